package session

import (
	"context"
	"sync"
)

// Store holds the persisted credential and its cached user snapshot.
//
// Contract:
//   - Get returns ("", nil, nil) when no credential is stored; an empty
//     token is never paired with a non-nil user or vice versa.
//   - Set persists both values together.
//   - Clear removes both values together.
//
// Set and Clear are atomic with respect to concurrent Get calls.
type Store interface {
	Get(ctx context.Context) (token string, user *UserSnapshot, err error)
	Set(ctx context.Context, token string, user *UserSnapshot) error
	Clear(ctx context.Context) error
}

// MemoryStore is a Store kept entirely in process memory. It backs tests
// and any run that opts out of persistence.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *UserSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(ctx context.Context) (string, *UserSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", nil, nil
	}
	return m.token, copySnapshot(m.user), nil
}

func (m *MemoryStore) Set(ctx context.Context, token string, user *UserSnapshot) error {
	u := copySnapshot(user)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = u
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}

func copySnapshot(u *UserSnapshot) *UserSnapshot {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
