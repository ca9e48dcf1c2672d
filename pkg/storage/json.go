package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ReadArray reads a JSON array stored under key.
//
// A missing key is an empty array.
func ReadArray[T any](ctx context.Context, store Store, key string) ([]T, error) {
	items := make([]T, 0)

	value, err := store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return items, nil
	} else if err != nil {
		return nil, err
	}

	// Browser clients store "null" for collections that were never initialized
	if len(value) == 0 || string(value) == "null" {
		return items, nil
	}

	if err := json.Unmarshal(value, &items); err != nil {
		log.Error().Str("key", key).Err(err).Msg("stored array could not be decoded")
		return nil, fmt.Errorf("%w: the value for %s is not a valid JSON array", ErrStorage, key)
	}

	return items, nil
}

// WriteArray writes items as JSON array under key, replacing the whole collection.
func WriteArray[T any](ctx context.Context, store Store, key string, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}

	return WriteObject(ctx, store, key, items)
}

// ReadObject reads a JSON document stored under key into a value of type T.
//
// ErrKeyNotFound is passed through for missing keys.
func ReadObject[T any](ctx context.Context, store Store, key string) (T, error) {
	var object T

	value, err := store.Get(ctx, key)
	if err != nil {
		return object, err
	}

	if err := json.Unmarshal(value, &object); err != nil {
		log.Error().Str("key", key).Err(err).Msg("stored object could not be decoded")
		return object, fmt.Errorf("%w: the value for %s is not a valid JSON document", ErrStorage, key)
	}

	return object, nil
}

// WriteObject writes object as JSON document under key.
func WriteObject(ctx context.Context, store Store, key string, object any) error {
	value, err := json.Marshal(object)
	if err != nil {
		log.Error().Str("key", key).Err(err).Msg("value could not be encoded")
		return fmt.Errorf("%w: the value for %s could not be encoded", ErrStorage, key)
	}

	return store.Set(ctx, key, value)
}
