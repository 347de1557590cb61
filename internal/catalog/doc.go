// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog provides the in-memory movie catalog used by the
// recommendation engine and the analytics endpoints.
//
// A Catalog is built once from a CSV source and never mutated afterwards.
// Rows with missing or unparseable required fields are dropped silently and
// counted in LoadStats; only structural problems (no header, missing
// column, unreadable file) are reported as errors.
//
// # Architecture
//
//	CSV ──► Load ──► []Movie ──► New ──► *Catalog (title index, load order)
//	                                         │
//	                                         └──► Encoder (integer ids for an
//	                                              external scoring model)
//
// # Usage
//
//	cat, stats, err := catalog.LoadFile("data/movies.csv")
//	if err != nil {
//	    return fmt.Errorf("load catalog: %w", err)
//	}
//	logging.Info().Int("movies", cat.Len()).Int("dropped", stats.Dropped()).Msg("catalog loaded")
//
//	movie, ok := cat.Lookup("Inception")
//
// # Id Assignment
//
// Encoder assigns integer ids to titles, raw genre strings and directors
// the way a label encoder does: ids are positions in the sorted list of
// distinct values. When an EncoderStore is supplied, previously persisted
// ids are kept and unseen values are appended, so an external model trained
// on older ids keeps working after the catalog grows.
//
// # Thread Safety
//
// Catalog and Encoder are immutable after construction and safe for
// concurrent use without locking. BadgerEncoderStore is safe for concurrent
// use through BadgerDB transactions.
package catalog
