// Package replicastore persists encoded replica state to disk so a process
// can restart without losing what it had already converged on. It stores
// opaque bytes produced by crdtcodec under a caller-chosen key; it has no
// notion of which CRDT kind a key holds.
package replicastore

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("replicastore: key not found")

const defaultValueLogFileSize = 64 * 1024 * 1024 // 64MB, replica blobs are small

type config struct {
	valueLogFileSize int64
	inMemory         bool
}

// Option customizes how the underlying Badger database is opened.
type Option func(*config) error

// WithValueLogFileSize sets the max bytes per Badger value log file.
func WithValueLogFileSize(sizeBytes int64) Option {
	return func(cfg *config) error {
		if sizeBytes <= 0 {
			return fmt.Errorf("replicastore: value log file size must be > 0, got %d", sizeBytes)
		}
		cfg.valueLogFileSize = sizeBytes
		return nil
	}
}

// WithInMemory opens the database as a pure in-memory Badger instance,
// useful for tests and for demos that shouldn't touch disk.
func WithInMemory() Option {
	return func(cfg *config) error {
		cfg.inMemory = true
		return nil
	}
}

// Store is a small key/value wrapper over Badger, keyed by replica name.
type Store struct {
	db *badger.DB
}

// Open creates or opens a Badger database rooted at path. path is ignored
// when WithInMemory is set.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := config{valueLogFileSize: defaultValueLogFileSize}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var badgerOpts badger.Options
	if cfg.inMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		badgerOpts = badger.DefaultOptions(path).WithValueLogFileSize(cfg.valueLogFileSize)
	}
	badgerOpts.Logger = nil

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("replicastore: open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes data under key, overwriting any previous value.
func (s *Store) Save(key string, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Load reads the bytes saved under key. It returns ErrNotFound if key was
// never saved.
func (s *Store) Load(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes key. It is not an error to delete a key that was never
// saved.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Keys returns every key currently saved under prefix, in Badger's
// lexicographic iteration order.
func (s *Store) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}
