// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package match

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/reelmatch/internal/cache"
)

// Kind reports how a query was resolved.
type Kind string

const (
	KindExact Kind = "exact"
	KindFuzzy Kind = "fuzzy"
)

// Config holds the matcher thresholds.
type Config struct {
	// ResolveThreshold is the minimum Ratio (0-100) accepted as a fuzzy match.
	// Ratio divides the edit distance by the longer rune length, so a missing
	// leading article costs more than it would under a 2*M/T ratio: "avengers"
	// scores 67 against "The Avengers" and does not resolve at the default 70.
	ResolveThreshold int

	// SuggestionCutoff is the minimum SequenceRatio (0-1) for a suggestion.
	SuggestionCutoff float64

	// MaxSuggestions caps Suggest output.
	MaxSuggestions int

	// SearchThreshold is the minimum Ratio for the fuzzy search tier.
	SearchThreshold int

	// MinQueryLength is the shortest search query, in runes, that returns results.
	MinQueryLength int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		ResolveThreshold: 70,
		SuggestionCutoff: 0.3,
		MaxSuggestions:   5,
		SearchThreshold:  50,
		MinQueryLength:   2,
	}
}

// Result is a resolved query.
type Result struct {
	Index int
	Kind  Kind
	Score int
}

// Matcher resolves queries against a fixed list of titles. It is immutable
// after New and safe for concurrent use.
type Matcher struct {
	cfg    Config
	titles []string
	lower  []string
	exact  map[string]int
	prefix *cache.Trie
}

// New builds a Matcher over titles in catalog order.
func New(titles []string, cfg Config) *Matcher {
	m := &Matcher{
		cfg:    cfg,
		titles: titles,
		lower:  make([]string, len(titles)),
		exact:  make(map[string]int, len(titles)),
		prefix: cache.NewTrie(),
	}
	for i, title := range titles {
		l := strings.ToLower(title)
		m.lower[i] = l
		if _, dup := m.exact[l]; !dup {
			m.exact[l] = i
		}
		m.prefix.Insert(l, i)
	}
	return m
}

// Config returns the thresholds the matcher was built with.
func (m *Matcher) Config() Config {
	return m.cfg
}

// Resolve maps query to a catalog index. An exact case-insensitive match wins
// first; otherwise the highest scoring title at or above ResolveThreshold is
// returned, ties going to the earliest title. ok is false when neither step
// finds a title.
func (m *Matcher) Resolve(query string) (Result, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(m.titles) == 0 {
		return Result{}, false
	}

	if idx, ok := m.exact[strings.ToLower(query)]; ok {
		return Result{Index: idx, Kind: KindExact, Score: 100}, true
	}

	best, bestScore := -1, -1
	for i, title := range m.titles {
		if s := Ratio(query, title); s > bestScore {
			best, bestScore = i, s
		}
	}
	if bestScore < m.cfg.ResolveThreshold {
		return Result{}, false
	}
	return Result{Index: best, Kind: KindFuzzy, Score: bestScore}, true
}

type scored struct {
	index int
	score float64
}

// Suggest returns up to MaxSuggestions titles whose SequenceRatio to query is
// at least SuggestionCutoff, best first. Equal scores keep catalog order and
// repeated titles appear once.
func (m *Matcher) Suggest(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" || m.cfg.MaxSuggestions <= 0 {
		return []string{}
	}

	var candidates []scored
	for i, title := range m.titles {
		if m.exact[m.lower[i]] != i {
			continue
		}
		if s := SequenceRatio(query, title); s >= m.cfg.SuggestionCutoff {
			candidates = append(candidates, scored{index: i, score: s})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	n := min(len(candidates), m.cfg.MaxSuggestions)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = m.titles[candidates[i].index]
	}
	return out
}

// Search returns up to limit catalog indices for an autocomplete query:
// prefix matches, then substring matches, then fuzzy matches scoring at
// least SearchThreshold. Each tier is in catalog order and no index repeats.
func (m *Matcher) Search(query string, limit int) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if limit <= 0 || utf8.RuneCountInString(query) < m.cfg.MinQueryLength {
		return []int{}
	}

	out := make([]int, 0, limit)
	seen := make(map[int]struct{}, limit)
	add := func(idx int) bool {
		if _, dup := seen[idx]; dup {
			return false
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
		return len(out) >= limit
	}

	for _, idx := range m.prefix.PrefixIDs(query, 0) {
		if add(idx) {
			return out
		}
	}
	for i, l := range m.lower {
		if strings.Contains(l, query) && add(i) {
			return out
		}
	}
	for i, l := range m.lower {
		if _, dup := seen[i]; dup {
			continue
		}
		if Ratio(query, l) >= m.cfg.SearchThreshold && add(i) {
			return out
		}
	}
	return out
}
