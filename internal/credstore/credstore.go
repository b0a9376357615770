// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credstore persists the access/refresh token pair across process
// restarts using the OS keychain/credential store. Storage failures on read
// degrade to a logged-out state instead of surfacing: a broken keychain must
// never take the application down.
package credstore

import (
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "learndash-admin"

// Keys used for storing secrets in the OS keychain.
const (
	keyAccessToken  = "auth_access_token"
	keyRefreshToken = "auth_refresh_token"
)

// Pair is the persisted credential pair. A non-empty AccessToken means the
// session is considered authenticated.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// Authenticated reports whether the pair represents an authenticated session.
func (p Pair) Authenticated() bool { return p.AccessToken != "" }

// Store persists and retrieves the credential pair.
// Load never fails: missing or unreadable credentials yield a zero Pair.
type Store interface {
	Load() Pair
	Save(Pair) error
	Clear() error
}

// Keyring is a thread-safe Store backed by the OS keychain.
type Keyring struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// OpenKeyring opens the OS keyring for the service namespace. The file
// backend acts as a last-resort fallback on platforms without a native
// credential store (stored under the given fallback directory).
func OpenKeyring(fileFallbackDir string) (*Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		PassPrefix:       ServiceName,
		WinCredPrefix:    ServiceName,
		FileDir:          fileFallbackDir,
		FilePasswordFunc: keyring.FixedStringPrompt(ServiceName),
	})
	if err != nil {
		return nil, err
	}
	return &Keyring{ring: ring}, nil
}

// Load reads the stored pair. Any storage error yields an empty field, so a
// damaged keychain degrades to logged-out rather than crashing.
func (k *Keyring) Load() Pair {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var p Pair
	if it, err := k.ring.Get(keyAccessToken); err == nil {
		p.AccessToken = string(it.Data)
	}
	if it, err := k.ring.Get(keyRefreshToken); err == nil {
		p.RefreshToken = string(it.Data)
	}
	return p
}

// Save durably persists the pair before returning.
func (k *Keyring) Save(p Pair) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.ring.Set(keyring.Item{Key: keyAccessToken, Data: []byte(p.AccessToken)}); err != nil {
		return err
	}
	return k.ring.Set(keyring.Item{Key: keyRefreshToken, Data: []byte(p.RefreshToken)})
}

// Clear removes both tokens. Missing entries are not an error.
func (k *Keyring) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	_ = k.ring.Remove(keyAccessToken)
	_ = k.ring.Remove(keyRefreshToken)
	return nil
}

// Memory is an in-process Store for tests and ephemeral sessions.
type Memory struct {
	mu   sync.RWMutex
	pair Pair
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load() Pair {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pair
}

func (m *Memory) Save(p Pair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = p
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = Pair{}
	return nil
}
