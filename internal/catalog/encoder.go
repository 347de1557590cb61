// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"fmt"
	"sort"
)

// EncoderState is the persisted form of an Encoder. The position of a value
// in each slice is its id.
type EncoderState struct {
	Movies    []string `json:"movies"`
	Genres    []string `json:"genres"`
	Directors []string `json:"directors"`
}

// EncoderStore persists encoder state between process runs.
type EncoderStore interface {
	// Load returns the last saved state, or an empty state if none exists.
	Load(ctx context.Context) (*EncoderState, error)

	// Save replaces the stored state.
	Save(ctx context.Context, state *EncoderState) error
}

// vocab is a value to id mapping with ids assigned densely from zero.
type vocab struct {
	ids    map[string]int
	values []string
}

func newVocab(existing []string) vocab {
	v := vocab{
		ids:    make(map[string]int, len(existing)),
		values: make([]string, 0, len(existing)),
	}
	for _, s := range existing {
		if _, dup := v.ids[s]; dup {
			continue
		}
		v.ids[s] = len(v.values)
		v.values = append(v.values, s)
	}
	return v
}

// extend assigns ids to unseen values in ascending order.
// Returns the number of values added.
func (v *vocab) extend(distinct map[string]struct{}) int {
	fresh := make([]string, 0)
	for s := range distinct {
		if _, known := v.ids[s]; !known {
			fresh = append(fresh, s)
		}
	}
	sort.Strings(fresh)
	for _, s := range fresh {
		v.ids[s] = len(v.values)
		v.values = append(v.values, s)
	}
	return len(fresh)
}

func (v vocab) id(s string) (int, bool) {
	id, ok := v.ids[s]
	return id, ok
}

func (v vocab) value(id int) (string, bool) {
	if id < 0 || id >= len(v.values) {
		return "", false
	}
	return v.values[id], true
}

func (v vocab) snapshot() []string {
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

// Encoder assigns stable integer ids to titles, genre combinations and
// directors. It is immutable and safe for concurrent use.
type Encoder struct {
	movies    vocab
	genres    vocab
	directors vocab
}

// NewEncoder assigns ids from scratch: each id is the position of the value
// in the sorted list of distinct values in the catalog.
func NewEncoder(cat *Catalog) *Encoder {
	enc, _ := buildEncoder(nil, cat)
	return enc
}

// NewEncoderWithStore reuses ids from the store and appends any values the
// catalog introduces. The extended state is saved back when it changed.
func NewEncoderWithStore(ctx context.Context, cat *Catalog, store EncoderStore) (*Encoder, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load encoder state: %w", err)
	}

	enc, added := buildEncoder(state, cat)
	if added > 0 {
		if err := store.Save(ctx, enc.State()); err != nil {
			return nil, fmt.Errorf("save encoder state: %w", err)
		}
	}
	return enc, nil
}

// buildEncoder extends state with the catalog's values.
// Returns the encoder and the number of newly assigned ids.
func buildEncoder(state *EncoderState, cat *Catalog) (*Encoder, int) {
	if state == nil {
		state = &EncoderState{}
	}
	enc := &Encoder{
		movies:    newVocab(state.Movies),
		genres:    newVocab(state.Genres),
		directors: newVocab(state.Directors),
	}

	titles := make(map[string]struct{}, cat.Len())
	genres := make(map[string]struct{})
	directors := make(map[string]struct{})
	cat.Each(func(m Movie) bool {
		titles[m.Title] = struct{}{}
		genres[m.RawGenres] = struct{}{}
		directors[m.Director] = struct{}{}
		return true
	})

	added := enc.movies.extend(titles)
	added += enc.genres.extend(genres)
	added += enc.directors.extend(directors)
	return enc, added
}

// MovieID returns the id assigned to a title.
func (e *Encoder) MovieID(title string) (int, bool) {
	return e.movies.id(title)
}

// GenreID returns the id assigned to a raw genre string such as "Action|Drama".
func (e *Encoder) GenreID(rawGenres string) (int, bool) {
	return e.genres.id(rawGenres)
}

// DirectorID returns the id assigned to a director.
func (e *Encoder) DirectorID(director string) (int, bool) {
	return e.directors.id(director)
}

// Title returns the title for a movie id.
func (e *Encoder) Title(id int) (string, bool) {
	return e.movies.value(id)
}

// NumMovies returns the size of the title vocabulary.
func (e *Encoder) NumMovies() int { return len(e.movies.values) }

// NumGenres returns the size of the genre-combination vocabulary.
func (e *Encoder) NumGenres() int { return len(e.genres.values) }

// NumDirectors returns the size of the director vocabulary.
func (e *Encoder) NumDirectors() int { return len(e.directors.values) }

// State returns a copy of the encoder's vocabularies for persistence.
func (e *Encoder) State() *EncoderState {
	return &EncoderState{
		Movies:    e.movies.snapshot(),
		Genres:    e.genres.snapshot(),
		Directors: e.directors.snapshot(),
	}
}
