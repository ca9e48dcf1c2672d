package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"filippo.io/age"
	"filippo.io/age/armor"
	"github.com/rs/zerolog/log"
)

// armorHeader is the prefix of ASCII armored age ciphertexts.
const armorHeader = "-----BEGIN AGE ENCRYPTED FILE-----"

// Encrypted is a Store that encrypts all values with age before
// passing them to the wrapped Store.
//
// Values that were written before encryption was enabled are
// returned as they are and encrypted on their next write.
type Encrypted struct {
	store     Store
	identity  age.Identity
	recipient age.Recipient
}

// NewEncrypted wraps store. identity is an age X25519 secret key
// in the AGE-SECRET-KEY-1… format.
func NewEncrypted(store Store, identity string) (*Encrypted, error) {
	id, err := age.ParseX25519Identity(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the age identity: %w", err)
	}

	return &Encrypted{
		store:     store,
		identity:  id,
		recipient: id.Recipient(),
	}, nil
}

func (e *Encrypted) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := e.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(value, []byte(armorHeader)) {
		return value, nil
	}

	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(value)), e.identity)
	if err != nil {
		log.Error().Str("key", key).Err(err).Msg("value could not be decrypted")
		return nil, fmt.Errorf("%w: the value for %s could not be decrypted", ErrStorage, key)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		log.Error().Str("key", key).Err(err).Msg("value could not be decrypted")
		return nil, fmt.Errorf("%w: the value for %s could not be decrypted", ErrStorage, key)
	}

	return plaintext, nil
}

func (e *Encrypted) Set(ctx context.Context, key string, value []byte) error {
	ciphertext, err := e.encrypt(value)
	if err != nil {
		log.Error().Str("key", key).Err(err).Msg("value could not be encrypted")
		return fmt.Errorf("%w: the value for %s could not be encrypted", ErrStorage, key)
	}

	return e.store.Set(ctx, key, ciphertext)
}

func (e *Encrypted) Remove(ctx context.Context, key string) error {
	return e.store.Remove(ctx, key)
}

func (e *Encrypted) Keys(ctx context.Context) ([]string, error) {
	return e.store.Keys(ctx)
}

func (e *Encrypted) Ping(ctx context.Context) error {
	return e.store.Ping(ctx)
}

// encrypt encrypts data for the recipient and armors the result.
func (e *Encrypted) encrypt(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	a := armor.NewWriter(&buf)
	w, err := age.Encrypt(a, e.recipient)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	if err := a.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
