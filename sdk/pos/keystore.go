// Package pos is the client SDK for the Venda API: a session lifecycle
// manager over durable key-value storage, and per-resource stores that
// implement the fetch-diff-write-reconcile update protocol.
package pos

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Durable storage keys. Absence of keyToken is the canonical logged-out
// signal; a partially written set of keys is treated as logged out too.
const (
	keyToken       = "token"
	keyUserID      = "id_usuario"
	keyUserName    = "name_usuario"
	keyLoginTime   = "loginTime"
	keyRoles       = "roles"
	keyPermissions = "permissions"
)

var sessionKeys = []string{keyToken, keyUserID, keyUserName, keyLoginTime, keyRoles, keyPermissions}

// KeyStore is string-keyed, string-valued durable storage.
type KeyStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(keys ...string) error
}

// FileKeyStore persists the key set as a JSON object in a single file. Every
// write rewrites the whole file, which keeps the store crash-consistent at
// the cost of write amplification that does not matter at this size.
type FileKeyStore struct {
	path string
	mu   sync.Mutex
}

func NewFileKeyStore(path string) *FileKeyStore {
	return &FileKeyStore{path: path}
}

func (s *FileKeyStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false
	}
	value, ok := values[key]
	return value, ok
}

func (s *FileKeyStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

func (s *FileKeyStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(values, key)
	}
	return s.save(values)
}

func (s *FileKeyStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key store: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(raw, &values); err != nil {
		// A corrupt store reads as empty; the session guards treat that
		// as logged out rather than failing.
		return make(map[string]string), nil
	}
	return values, nil
}

func (s *FileKeyStore) save(values map[string]string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode key store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create key store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write key store: %w", err)
	}
	return nil
}

// MemoryKeyStore is an in-process KeyStore, mainly for tests.
type MemoryKeyStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{values: make(map[string]string)}
}

func (s *MemoryKeyStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryKeyStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryKeyStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}
