package inmem

import (
	"context"
	"sync"

	"github.com/gridpad/gridpad/domain"
)

// Backend is a thread-safe in-memory implementation of domain.Backend.
// Values are copied on read and write to avoid external mutation.
type Backend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewBackend() *Backend {
	return &Backend{slots: make(map[string][]byte)}
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.slots[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (b *Backend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	b.slots[key] = cp
	return nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.slots, key)
	return nil
}

// Compile-time assertion.
var _ domain.Backend = (*Backend)(nil)
