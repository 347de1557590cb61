// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
)

const testCSV = `movie,director,year,rating,genres,overview,revenue,duration
Alien,Ridley Scott,1979,8.5,Horror|Sci-Fi,In space no one can hear you scream,106.3,117
The Thing,John Carpenter,1982,8.2,Horror|Sci-Fi,Paranoia in Antarctica,19.6,109
Halloween,John Carpenter,1978,7.7,Horror,The night he came home,47,91
Broken,,1999,abc,Drama,,1,90
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func testConfig(path string) *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{Path: path},
		Recommend: config.RecommendConfig{
			NumRecommendations:  10,
			MinGenreOverlap:     0.5,
			HighRatingThreshold: 7.0,
			CacheEnabled:        true,
			CacheSize:           64,
		},
	}
}

func TestInitRecommend(t *testing.T) {
	t.Parallel()

	rc, err := initRecommend(context.Background(), testConfig(writeCatalog(t)), zerolog.Nop())
	if err != nil {
		t.Fatalf("initRecommend() error = %v", err)
	}
	defer rc.Close()

	if rc.Catalog.Len() != 3 {
		t.Errorf("catalog size = %d, want 3", rc.Catalog.Len())
	}
	if rc.Oracle != nil {
		t.Error("oracle created without a URL")
	}

	got := rc.Engine.GetRecommendations("Alien", rc.Engine.Config().Query())
	if len(got) != 2 || got[0].Movie.Title != "The Thing" {
		t.Errorf("recommendations = %+v", got)
	}
}

func TestInitRecommend_MissingCatalog(t *testing.T) {
	t.Parallel()

	_, err := initRecommend(context.Background(), testConfig(filepath.Join(t.TempDir(), "absent.csv")), zerolog.Nop())
	if err == nil {
		t.Fatal("initRecommend() succeeded without a catalog")
	}
}

func TestInitRecommend_OracleWithPersistentEncoder(t *testing.T) {
	t.Parallel()

	cfg := testConfig(writeCatalog(t))
	cfg.Oracle = config.OracleConfig{URL: "http://127.0.0.1:1", Timeout: time.Second, Burst: 1}
	cfg.Encoder = config.EncoderConfig{StorePath: t.TempDir()}

	rc, err := initRecommend(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initRecommend() error = %v", err)
	}
	if rc.Oracle == nil {
		t.Fatal("oracle not created")
	}
	if len(rc.closers) != 1 {
		t.Errorf("closers = %d, want the encoder store", len(rc.closers))
	}
	if err := rc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestBuildEngineConfig(t *testing.T) {
	t.Parallel()

	got := buildEngineConfig(config.RecommendConfig{
		NumRecommendations:  5,
		MinGenreOverlap:     0.25,
		HighRatingThreshold: 8,
		CacheEnabled:        true,
		CacheSize:           10,
		CacheTTL:            time.Minute,
	})
	if got.NumRecommendations != 5 || got.MinGenreOverlap != 0.25 || got.HighRatingThreshold != 8 {
		t.Errorf("query defaults = %+v", got)
	}
	if !got.Cache.Enabled || got.Cache.MaxEntries != 10 || got.Cache.TTL != time.Minute {
		t.Errorf("cache = %+v", got.Cache)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestDropReasons(t *testing.T) {
	t.Parallel()

	got := dropReasons(catalog.LoadStats{Incomplete: 2, Duplicates: 1})
	if got[string(catalog.DropIncomplete)] != 2 || got[string(catalog.DropDuplicate)] != 1 {
		t.Errorf("dropReasons() = %v", got)
	}
}
