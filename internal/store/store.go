// Package store keeps a persistent index of processed games in BadgerDB,
// keyed by final position hash.
package store

import (
	"encoding/binary"
	"encoding/json"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/output"
)

// Key prefixes
const (
	prefixSignatures = "sig/"
	prefixGames      = "game/"
)

// Store wraps BadgerDB for the game index.
type Store struct {
	db *badger.DB
}

var _ hashing.Backend = (*Store)(nil)

// Open opens or creates the index in dir. An empty dir keeps the index in
// memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening game index %q", dir)
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(prefix string, hash uint64) []byte {
	k := make([]byte, len(prefix)+8)
	copy(k, prefix)
	binary.BigEndian.PutUint64(k[len(prefix):], hash)
	return k
}

// getJSON decodes the value under k into v. It reports false when the key
// is missing.
func (s *Store) getJSON(k []byte, v interface{}) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}

// Signatures returns the game signatures stored for a final position.
func (s *Store) Signatures(hash uint64) ([]hashing.GameSignature, error) {
	var sigs []hashing.GameSignature
	if _, err := s.getJSON(key(prefixSignatures, hash), &sigs); err != nil {
		return nil, err
	}
	return sigs, nil
}

// Add stores a game signature under its final position hash.
func (s *Store) Add(sig hashing.GameSignature) error {
	k := key(prefixSignatures, sig.Hash)
	return s.db.Update(func(txn *badger.Txn) error {
		var sigs []hashing.GameSignature
		item, err := txn.Get(k)
		switch {
		case err == badger.ErrKeyNotFound:
		case err != nil:
			return err
		default:
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &sigs)
			}); err != nil {
				return err
			}
		}

		data, err := json.Marshal(append(sigs, sig))
		if err != nil {
			return err
		}
		return txn.Set(k, data)
	})
}

// Seen reports whether any game ending in the position hash is indexed.
func (s *Store) Seen(hash uint64) (bool, error) {
	sigs, err := s.Signatures(hash)
	return len(sigs) > 0, err
}

// Record stores a game under its final position hash, replacing any game
// already stored there.
func (s *Store) Record(hash uint64, rec *output.GameRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(prefixGames, hash), data)
	})
}

// Lookup returns the game stored under the position hash.
func (s *Store) Lookup(hash uint64) (*output.GameRecord, bool, error) {
	rec := &output.GameRecord{}
	found, err := s.getJSON(key(prefixGames, hash), rec)
	if err != nil || !found {
		return nil, false, err
	}
	return rec, true, nil
}

// Count returns the number of stored games.
func (s *Store) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixGames)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
