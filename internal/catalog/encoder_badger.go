// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key layout for encoder state in BadgerDB.
const (
	encoderKeyPrefix    = "encoder:"
	encoderMoviesKey    = encoderKeyPrefix + "movies"
	encoderGenresKey    = encoderKeyPrefix + "genres"
	encoderDirectorsKey = encoderKeyPrefix + "directors"
)

// BadgerEncoderStore implements EncoderStore on top of BadgerDB.
type BadgerEncoderStore struct {
	db     *badger.DB
	closer bool
}

// OpenBadgerEncoderStore opens (or creates) a BadgerDB database at path.
// The returned store owns the database and closes it in Close.
func OpenBadgerEncoderStore(path string) (*BadgerEncoderStore, error) {
	if path == "" {
		return nil, errors.New("encoder store path cannot be empty")
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.ValueLogFileSize = 16 << 20 // vocabularies are small
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for encoder state: %w", err)
	}
	return &BadgerEncoderStore{db: db, closer: true}, nil
}

// NewBadgerEncoderStore wraps an existing database. Close does not close it.
func NewBadgerEncoderStore(db *badger.DB) *BadgerEncoderStore {
	return &BadgerEncoderStore{db: db}
}

// Load implements EncoderStore.
func (s *BadgerEncoderStore) Load(ctx context.Context) (*EncoderState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state := &EncoderState{}
	err := s.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, encoderMoviesKey, &state.Movies); err != nil {
			return err
		}
		if err := getJSON(txn, encoderGenresKey, &state.Genres); err != nil {
			return err
		}
		return getJSON(txn, encoderDirectorsKey, &state.Directors)
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Save implements EncoderStore.
func (s *BadgerEncoderStore) Save(ctx context.Context, state *EncoderState) error {
	if state == nil {
		return errors.New("encoder state cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := setJSON(txn, encoderMoviesKey, state.Movies); err != nil {
			return err
		}
		if err := setJSON(txn, encoderGenresKey, state.Genres); err != nil {
			return err
		}
		return setJSON(txn, encoderDirectorsKey, state.Directors)
	})
}

// Close closes the underlying database when the store opened it.
func (s *BadgerEncoderStore) Close() error {
	if !s.closer {
		return nil
	}
	return s.db.Close()
}

// getJSON decodes the value at key into dst. A missing key leaves dst untouched.
func getJSON(txn *badger.Txn, key string, dst interface{}) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, dst); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return nil
	})
}

func setJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
