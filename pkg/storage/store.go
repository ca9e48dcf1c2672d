// Package storage implements the durable key/value store that holds
// all state of the expense tracker as JSON documents.
package storage

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound = errors.New("no value is stored for this key")
	ErrStorage     = errors.New("the storage could not process the request")
)

// Store reads and writes values under string keys.
//
// Get returns ErrKeyNotFound for keys without a value. All other failures
// are reported as ErrStorage.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
