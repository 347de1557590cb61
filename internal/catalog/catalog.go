// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"sort"
	"strings"
)

// Catalog is an immutable collection of movies indexed by exact title.
// It is safe for concurrent use.
type Catalog struct {
	movies  []Movie
	byTitle map[string]int
}

// New builds a catalog from the given movies, preserving their order.
// Movies with an empty title or no genres are skipped, and when a title
// appears more than once the first occurrence wins. Index is reassigned to
// the position in the resulting catalog.
func New(movies []Movie) *Catalog {
	c := &Catalog{
		movies:  make([]Movie, 0, len(movies)),
		byTitle: make(map[string]int, len(movies)),
	}
	for _, m := range movies {
		c.add(m)
	}
	return c
}

// add appends a movie if it satisfies the catalog invariants.
// Returns false when the movie was rejected.
func (c *Catalog) add(m Movie) bool {
	if m.Title == "" || m.Genres.Len() == 0 {
		return false
	}
	if _, exists := c.byTitle[m.Title]; exists {
		return false
	}
	m.Index = len(c.movies)
	c.byTitle[m.Title] = m.Index
	c.movies = append(c.movies, m)
	return true
}

// Lookup returns the movie with exactly the given title.
func (c *Catalog) Lookup(title string) (Movie, bool) {
	if c == nil {
		return Movie{}, false
	}
	i, ok := c.byTitle[title]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Contains reports whether a movie with the given title exists.
func (c *Catalog) Contains(title string) bool {
	_, ok := c.Lookup(title)
	return ok
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.movies)
}

// Movies returns a copy of all movies in load order.
func (c *Catalog) Movies() []Movie {
	if c == nil {
		return nil
	}
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Each calls fn for every movie in load order until fn returns false.
func (c *Catalog) Each(fn func(Movie) bool) {
	if c == nil {
		return
	}
	for _, m := range c.movies {
		if !fn(m) {
			return
		}
	}
}

// Titles returns all titles in ascending order.
func (c *Catalog) Titles() []string {
	if c == nil {
		return nil
	}
	titles := make([]string, len(c.movies))
	for i, m := range c.movies {
		titles[i] = m.Title
	}
	sort.Strings(titles)
	return titles
}

// Search returns movies whose title contains query, case-insensitively.
// Exact (case-insensitive) matches come first, then prefix matches, then
// the rest, each group in load order. A limit <= 0 returns every match.
func (c *Catalog) Search(query string, limit int) []Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if c == nil || query == "" {
		return []Movie{}
	}

	var exact, prefix, other []Movie
	for _, m := range c.movies {
		title := strings.ToLower(m.Title)
		switch {
		case title == query:
			exact = append(exact, m)
		case strings.HasPrefix(title, query):
			prefix = append(prefix, m)
		case strings.Contains(title, query):
			other = append(other, m)
		}
	}

	out := make([]Movie, 0, len(exact)+len(prefix)+len(other))
	out = append(out, exact...)
	out = append(out, prefix...)
	out = append(out, other...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
