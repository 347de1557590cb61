// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// GenreDelimiter separates individual genres in the source genres column.
const GenreDelimiter = "|"

// Movie is one catalog entry.
type Movie struct {
	// Index is the position of the movie in load order among kept rows.
	Index int `json:"index"`

	Title    string   `json:"title"`
	Director string   `json:"director"`
	Year     int      `json:"year"`
	Rating   float64  `json:"rating"`
	Revenue  float64  `json:"revenue"`
	Genres   GenreSet `json:"genres"`

	// RawGenres is the genres column as written in the source, e.g.
	// "Action|Sci-Fi". It identifies the genre combination.
	RawGenres string `json:"raw_genres"`

	Overview string `json:"overview"`

	// Duration in minutes. Zero when the source value is absent.
	Duration int    `json:"duration,omitempty"`
	Language string `json:"language,omitempty"`
	Country  string `json:"country,omitempty"`
}

// GenreSet is an immutable, sorted, duplicate-free set of genre names.
type GenreSet struct {
	names []string
}

// ParseGenres splits a delimited genre string into a set.
// Empty segments and surrounding whitespace are ignored.
func ParseGenres(raw string) GenreSet {
	parts := strings.Split(raw, GenreDelimiter)
	seen := make(map[string]struct{}, len(parts))
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		names = append(names, p)
	}
	sort.Strings(names)
	return GenreSet{names: names}
}

// NewGenreSet builds a set from individual genre names.
func NewGenreSet(names ...string) GenreSet {
	return ParseGenres(strings.Join(names, GenreDelimiter))
}

// Len returns the number of distinct genres.
func (g GenreSet) Len() int {
	return len(g.names)
}

// Contains reports whether the set holds the given genre.
func (g GenreSet) Contains(name string) bool {
	i := sort.SearchStrings(g.names, name)
	return i < len(g.names) && g.names[i] == name
}

// Intersect returns the number of genres present in both sets.
func (g GenreSet) Intersect(other GenreSet) int {
	small, large := g, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	n := 0
	for _, name := range small.names {
		if large.Contains(name) {
			n++
		}
	}
	return n
}

// Sorted returns a copy of the genre names in ascending order.
func (g GenreSet) Sorted() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// String joins the genres with the source delimiter.
func (g GenreSet) String() string {
	return strings.Join(g.names, GenreDelimiter)
}

// MarshalJSON encodes the set as a sorted array.
func (g GenreSet) MarshalJSON() ([]byte, error) {
	if g.names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g.names)
}

// UnmarshalJSON decodes a JSON array of genre names.
func (g *GenreSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*g = NewGenreSet(names...)
	return nil
}
