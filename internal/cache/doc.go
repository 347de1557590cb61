// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache provides thread-safe generic data structures: an LRU cache with
optional TTL, and a case-insensitive prefix trie.

The recommendation engine uses it to memoize ranked lists keyed by the
query parameters. Because the catalog is immutable, entries never go stale
and the default configuration disables expiry; a TTL can still be set to
bound memory for long-running processes with a large query space.

# Usage Example

	memo := cache.NewLRU[[]recommend.Result](1024, 0)
	memo.Add(key, results)
	if cached, ok := memo.Get(key); ok {
	    return cached
	}

The HTTP layer also keeps an LRU of analytics reports, and a Trie over
catalog titles to answer autocomplete queries:

	titles := cache.NewTrie[catalog.Movie]()
	cat.Each(func(m catalog.Movie) bool {
	    titles.Insert(m.Title, m)
	    return true
	})
	suggestions := titles.Complete("ali", 10)

# Performance

Get, Add and Remove are O(1): a map gives key lookup and a doubly-linked
list keeps recency order, so eviction pops the tail without scanning.
Trie operations are O(m) in the key length; Complete additionally sorts
the matches under the prefix.

# Thread Safety

All operations take the structure's mutex. Hit and miss counters are updated
under the same lock and exposed through Stats.
*/
package cache
