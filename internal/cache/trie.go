// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"sort"
	"strings"
	"sync"
)

// DefaultMaxSuggestions bounds Complete when the caller passes no limit.
const DefaultMaxSuggestions = 10

type trieNode[V any] struct {
	children map[rune]*trieNode[V]
	isEnd    bool
	key      string // original key, case preserved
	value    V
}

func newTrieNode[V any]() *trieNode[V] {
	return &trieNode[V]{children: make(map[rune]*trieNode[V])}
}

// Trie is a thread-safe, case-insensitive prefix tree mapping string keys to
// values. Insert, Get and prefix descent are O(m) in the key length.
//
// The HTTP layer builds one over catalog titles for autocomplete.
type Trie[V any] struct {
	mu   sync.RWMutex
	root *trieNode[V]
	size int
}

// Suggestion is one Complete match.
type Suggestion[V any] struct {
	Key   string
	Value V
}

// NewTrie creates an empty Trie.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{root: newTrieNode[V]()}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Insert stores value under key, replacing any value stored under a key
// that normalizes the same way. It reports whether the key was new.
// Blank keys are ignored.
func (t *Trie[V]) Insert(key string, value V) bool {
	norm := normalizeKey(key)
	if norm == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range norm {
		next := node.children[ch]
		if next == nil {
			next = newTrieNode[V]()
			node.children[ch] = next
		}
		node = next
	}

	isNew := !node.isEnd
	node.isEnd = true
	node.key = key
	node.value = value
	if isNew {
		t.size++
	}
	return isNew
}

// Get returns the value stored under key, ignoring case.
func (t *Trie[V]) Get(key string) (V, bool) {
	var zero V
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(normalizeKey(key))
	if node == nil || !node.isEnd {
		return zero, false
	}
	return node.value, true
}

// HasPrefix reports whether any stored key starts with prefix.
func (t *Trie[V]) HasPrefix(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if normalizeKey(prefix) == "" {
		return t.size > 0
	}
	return t.find(normalizeKey(prefix)) != nil
}

// Complete returns up to limit entries whose key starts with prefix, ordered
// by normalized key and then by original key. A limit <= 0 uses
// DefaultMaxSuggestions. A blank prefix matches nothing.
func (t *Trie[V]) Complete(prefix string, limit int) []Suggestion[V] {
	if limit <= 0 {
		limit = DefaultMaxSuggestions
	}
	norm := normalizeKey(prefix)
	if norm == "" {
		return []Suggestion[V]{}
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(norm)
	if node == nil {
		return []Suggestion[V]{}
	}

	var results []Suggestion[V]
	collect(node, &results)

	sort.Slice(results, func(i, j int) bool {
		ki, kj := normalizeKey(results[i].Key), normalizeKey(results[j].Key)
		if ki != kj {
			return ki < kj
		}
		return results[i].Key < results[j].Key
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Len returns the number of stored keys.
func (t *Trie[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// find walks to the node for a normalized key. Caller holds the lock.
func (t *Trie[V]) find(norm string) *trieNode[V] {
	node := t.root
	for _, ch := range norm {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collect[V any](node *trieNode[V], results *[]Suggestion[V]) {
	if node.isEnd {
		*results = append(*results, Suggestion[V]{Key: node.key, Value: node.value})
	}
	for _, child := range node.children {
		collect(child, results)
	}
}
