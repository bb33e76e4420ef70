package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// BadgerKV wraps a Badger database behind the KV interface.
type BadgerKV struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a Badger store at the given directory.
// Logging is silenced — Badger's default logger is chatty at startup.
func OpenBadger(dir string) (*BadgerKV, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerKV{db: db}, nil
}

// OpenBadgerMemory opens an in-memory Badger store for testing.
func OpenBadgerMemory() (*BadgerKV, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger memory: %w", err)
	}
	return &BadgerKV{db: db}, nil
}

func (b *BadgerKV) Get(key string) ([]byte, error) {
	var result []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		result, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badger get %q: %w", key, err)
	}
	return result, nil
}

func (b *BadgerKV) Set(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("badger set %q: %w", key, err)
	}
	return nil
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}
