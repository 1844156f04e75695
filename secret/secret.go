// Package secret persists the model-service credential in client-local
// storage.
//
// The value is base64 encoded before it is written. This is obfuscation,
// not encryption: anyone with access to the storage can decode it. Holding
// the secret safely would need a user-supplied passphrase, which the app
// does not ask for.
package secret

import (
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/oreum-app/oreum"
)

// Key is the namespaced storage key the credential lives under.
const Key = "oreum_api_key_secure"

// Store saves, loads and clears the credential. Save and Load never return
// errors; failures are logged.
type Store struct {
	storage oreum.Storage
	logger  *slog.Logger
}

// Option configures a [Store].
type Option func(*Store)

// WithLogger sets the logger failures are reported to. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store over storage.
func New(storage oreum.Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Save encodes secret and overwrites any previous value.
func (s *Store) Save(secret string) {
	if err := s.storage.Set(Key, Encode(secret)); err != nil {
		s.logger.Error("failed to save API key", "op", "secret_save", "error", err)
	}
}

// Load returns the stored secret. ok is false when nothing is stored, the
// storage cannot be read, or the stored value does not decode.
func (s *Store) Load() (secret string, ok bool) {
	encoded, found, err := s.storage.Get(Key)
	if err != nil {
		s.logger.Error("failed to load API key", "op", "secret_load", "error", err)
		return "", false
	}
	if !found {
		return "", false
	}
	secret, err = Decode(encoded)
	if err != nil {
		s.logger.Error("failed to load API key", "op", "secret_load", "error", err)
		return "", false
	}
	return secret, true
}

// Clear removes the stored secret.
func (s *Store) Clear() {
	if err := s.storage.Delete(Key); err != nil {
		s.logger.Error("failed to clear API key", "op", "secret_clear", "error", err)
	}
}

// Encode applies the reversible storage transform.
func Encode(secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(secret))
}

// Decode reverses Encode.
func Decode(encoded string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode secret: %w", err)
	}
	return string(b), nil
}
