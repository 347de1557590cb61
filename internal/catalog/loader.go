// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrEmptySource is returned when the source has no header row.
	ErrEmptySource = errors.New("catalog: source has no header row")

	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("catalog: required column missing")
)

// Column names recognised in the source header (case-insensitive).
const (
	ColDirector = "director"
	ColDuration = "duration"
	ColGenres   = "genres"
	ColMovie    = "movie"
	ColLanguage = "language"
	ColCountry  = "country"
	ColYear     = "year"
	ColRating   = "rating"
	ColOverview = "overview"
	ColRevenue  = "revenue"

	// colTitleAlias is accepted in place of ColMovie.
	colTitleAlias = "title"
)

// requiredColumns must all be present in the header.
var requiredColumns = []string{ColDirector, ColGenres, ColMovie, ColYear, ColRating, ColOverview, ColRevenue}

// DropReason classifies why a source row was excluded.
type DropReason string

const (
	DropIncomplete DropReason = "incomplete"
	DropMalformed  DropReason = "malformed_numeric"
	DropDuplicate  DropReason = "duplicate_title"
)

// LoadStats summarises a load. Dropped rows are not errors.
type LoadStats struct {
	Rows       int `json:"rows"`
	Loaded     int `json:"loaded"`
	Incomplete int `json:"incomplete"`
	Malformed  int `json:"malformed"`
	Duplicates int `json:"duplicates"`
}

// Dropped returns the total number of rows excluded from the catalog.
func (s LoadStats) Dropped() int {
	return s.Incomplete + s.Malformed + s.Duplicates
}

// ByReason returns the dropped-row counts keyed by reason.
func (s LoadStats) ByReason() map[DropReason]int {
	return map[DropReason]int{
		DropIncomplete: s.Incomplete,
		DropMalformed:  s.Malformed,
		DropDuplicate:  s.Duplicates,
	}
}

func (s *LoadStats) record(reason DropReason) {
	switch reason {
	case DropIncomplete:
		s.Incomplete++
	case DropMalformed:
		s.Malformed++
	case DropDuplicate:
		s.Duplicates++
	}
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Catalog, LoadStats, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cat, stats, err := Load(f)
	if err != nil {
		return nil, stats, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, stats, nil
}

// Load reads a CSV catalog with a header row. Rows whose field count
// differs from the header are dropped as incomplete rather than failing
// the whole load.
func Load(r io.Reader) (*Catalog, LoadStats, error) {
	var stats LoadStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, stats, ErrEmptySource
	}
	if err != nil {
		return nil, stats, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, stats, err
	}

	cat := &Catalog{byTitle: make(map[string]int)}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read row %d: %w", stats.Rows+1, err)
		}
		stats.Rows++

		if len(row) != len(header) {
			stats.record(DropIncomplete)
			continue
		}

		movie, reason := cols.parse(row)
		if reason != "" {
			stats.record(reason)
			continue
		}
		if !cat.add(movie) {
			stats.record(DropDuplicate)
			continue
		}
		stats.Loaded++
	}

	return cat, stats, nil
}

// columnIndex maps column names to their position in a row.
type columnIndex map[string]int

func resolveColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	if _, ok := cols[ColMovie]; !ok {
		if i, alias := cols[colTitleAlias]; alias {
			cols[ColMovie] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

// field returns the raw value of a column, or "" when the row is short or
// the column is not in the header.
func (c columnIndex) field(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parse converts a row into a Movie. A non-empty DropReason means the row
// must be excluded.
func (c columnIndex) parse(row []string) (Movie, DropReason) {
	for _, name := range requiredColumns {
		if strings.TrimSpace(c.field(row, name)) == "" {
			return Movie{}, DropIncomplete
		}
	}

	rawGenres := strings.TrimSpace(c.field(row, ColGenres))
	genres := ParseGenres(rawGenres)
	if genres.Len() == 0 {
		return Movie{}, DropIncomplete
	}

	year, ok := parseNumber(c.field(row, ColYear))
	if !ok {
		return Movie{}, DropMalformed
	}
	rating, ok := parseNumber(c.field(row, ColRating))
	if !ok {
		return Movie{}, DropMalformed
	}
	revenue, ok := parseNumber(c.field(row, ColRevenue))
	if !ok || revenue < 0 {
		return Movie{}, DropMalformed
	}

	m := Movie{
		Title:     strings.TrimSpace(c.field(row, ColMovie)),
		Director:  strings.TrimSpace(c.field(row, ColDirector)),
		Year:      int(math.Trunc(year)),
		Rating:    rating,
		Revenue:   revenue,
		Genres:    genres,
		RawGenres: rawGenres,
		Overview:  c.field(row, ColOverview),
		Language:  strings.TrimSpace(c.field(row, ColLanguage)),
		Country:   strings.TrimSpace(c.field(row, ColCountry)),
	}
	if d, ok := parseNumber(c.field(row, ColDuration)); ok && d > 0 {
		m.Duration = int(math.Round(d))
	}
	return m, ""
}

// parseNumber parses a finite float. NaN and infinities count as missing.
func parseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
