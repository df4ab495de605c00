// Package keystore keeps the Linear API key and default team id in the
// operating system's credential store (macOS Keychain, Windows Credential
// Manager, Secret Service on Linux).
package keystore

import (
	"github.com/zalando/go-keyring"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
	"github.com/dimasma0305/linearcli/internal/log"
)

// Account names used under the service namespace.
const (
	APIKey      = "api-key"
	DefaultTeam = "default-team"
)

// Store reads and writes secrets under one service namespace.
type Store struct {
	service string
}

// New returns a Store for the given service namespace.
func New(service string) *Store {
	return &Store{service: service}
}

// Service returns the namespace this store writes under.
func (s *Store) Service() string {
	return s.service
}

// Set persists value under key, overwriting any previous value.
func (s *Store) Set(key, value string) error {
	log.Debug("Storing %s in credential store %q", key, s.service)
	if err := keyring.Set(s.service, key, value); err != nil {
		return unavailable(err)
	}
	return nil
}

// Get returns the value stored under key. ok is false when nothing was stored.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	value, err = keyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			log.Debug("No %s in credential store %q", key, s.service)
			return "", false, nil
		}
		return "", false, unavailable(err)
	}
	return value, true, nil
}

func unavailable(err error) error {
	return &errors.Error{
		Kind:    errors.KindCredentialStore,
		Message: errors.ErrCredentialStoreUnavailable.Error() + ": " + err.Error(),
		Err:     errors.Wrap(errors.ErrCredentialStoreUnavailable, err.Error()),
	}
}
