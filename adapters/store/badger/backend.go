package badger

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/gridpad/gridpad/domain"
)

// Backend is a BadgerDB-backed implementation of domain.Backend. Every
// operation runs in its own transaction.
type Backend struct {
	db *badger.DB
}

func NewBackend(db *badger.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (b *Backend) Set(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *Backend) Delete(_ context.Context, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Close closes the underlying database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// Compile-time assertion.
var _ domain.Backend = (*Backend)(nil)
