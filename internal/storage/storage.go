package storage

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces perft entries: prefix | hash (8 bytes) | depth (1 byte).
const keyPrefix = 'p'

// PerftCache wraps BadgerDB as a persistent perft.Cache.
type PerftCache struct {
	db *badger.DB

	mu  sync.Mutex
	err error // first error seen by Lookup/Store
}

// OpenPerftCache opens (or creates) a cache in dir.
func OpenPerftCache(dir string) (*PerftCache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &PerftCache{db: db}, nil
}

// Close closes the database
func (c *PerftCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func perftKey(hash uint64, depth int) []byte {
	key := make([]byte, 10)
	key[0] = keyPrefix
	binary.BigEndian.PutUint64(key[1:9], hash)
	key[9] = byte(depth)
	return key
}

// Get returns the stored node count for a position hash and depth.
func (c *PerftCache) Get(hash uint64, depth int) (int64, bool, error) {
	var nodes int64
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(hash, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return errors.New("storage: corrupt perft entry")
			}
			nodes = int64(binary.BigEndian.Uint64(val))
			found = true
			return nil
		})
	})

	return nodes, found, err
}

// Put stores a node count for a position hash and depth.
func (c *PerftCache) Put(hash uint64, depth int, nodes int64) error {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(nodes))

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(hash, depth), val)
	})
}

// Lookup implements perft.Cache. Errors are recorded and reported by Err.
func (c *PerftCache) Lookup(hash uint64, depth int) (int64, bool) {
	nodes, ok, err := c.Get(hash, depth)
	if err != nil {
		c.record(err)
		return 0, false
	}
	return nodes, ok
}

// Store implements perft.Cache. Errors are recorded and reported by Err.
func (c *PerftCache) Store(hash uint64, depth int, nodes int64) {
	if err := c.Put(hash, depth, nodes); err != nil {
		c.record(err)
	}
}

// Err returns the first error seen by Lookup or Store.
func (c *PerftCache) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *PerftCache) record(err error) {
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

// Count returns the number of cached entries.
func (c *PerftCache) Count() (int, error) {
	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte{keyPrefix}
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}
