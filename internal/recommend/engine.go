// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/match"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
)

// Engine serves lookups, pagination and search over one built catalog.
// It is immutable after construction and safe for concurrent use; a new
// catalog means a new Engine.
type Engine struct {
	config  Config
	entries []catalog.Entry
	index   *algorithms.Index
	matcher *match.Matcher
	byID    map[int64]int
	stats   Stats

	// results is internally synchronized; it only memoizes pure lookups
	results *cache.LRU[*Recommendation]
}

// NewEngine assembles an engine from entries and an index built over their
// tags. Most callers use Init instead.
func NewEngine(entries []catalog.Entry, index *algorithms.Index, cfg Config, stats Stats) *Engine {
	byID := make(map[int64]int, len(entries))
	for i := range entries {
		if _, dup := byID[entries[i].ID]; !dup {
			byID[entries[i].ID] = i
		}
	}

	stats.Entries = len(entries)
	if index != nil && index.Vectorizer != nil {
		stats.Vocabulary = index.Vectorizer.VocabularySize()
	}

	var results *cache.LRU[*Recommendation]
	if cfg.Cache.Capacity > 0 {
		results = cache.NewLRU[*Recommendation](cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	return &Engine{
		config:  cfg,
		entries: entries,
		index:   index,
		matcher: match.New(catalog.Titles(entries), cfg.Match),
		byID:    byID,
		stats:   stats,
		results: results,
	}
}

// Lookup resolves query to a catalog entry and returns its k most similar
// entries. k <= 0 selects the configured TopK and k is capped at MaxK.
// When nothing matches, the error is a *NotFoundError carrying suggestions.
func (e *Engine) Lookup(query string, k int) (*Recommendation, error) {
	query = strings.TrimSpace(query)
	if k <= 0 {
		k = e.config.TopK
	}
	if k > e.config.MaxK {
		k = e.config.MaxK
	}

	key := strings.ToLower(query) + "|" + strconv.Itoa(k)
	if e.results != nil {
		if rec, ok := e.results.Get(key); ok {
			metrics.RecordCacheAccess(true)
			metrics.RecordLookup(string(rec.Match))
			return rec, nil
		}
		metrics.RecordCacheAccess(false)
	}

	res, ok := e.matcher.Resolve(query)
	if !ok {
		metrics.RecordLookup("not_found")
		return nil, &NotFoundError{Query: query, Suggestions: e.matcher.Suggest(query)}
	}
	metrics.RecordLookup(string(res.Kind))

	ranked, err := Recommend(e.index.Matrix, res.Index, k)
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{
		Query: query,
		Movie: &e.entries[res.Index],
		Match: res.Kind,
		Score: res.Score,
		Items: make([]RecommendedEntry, len(ranked)),
	}
	for i, s := range ranked {
		rec.Items[i] = RecommendedEntry{Entry: &e.entries[s.Index], Similarity: s.Score}
	}

	if e.results != nil {
		e.results.Add(key, rec)
	}
	return rec, nil
}

// Page returns titles [(page-1)*perPage, page*perPage) in catalog order.
// Pages past the end are empty; Total is always the catalog size.
func (e *Engine) Page(page, perPage int) Page {
	p := Page{Page: page, PerPage: perPage, Titles: []string{}, Total: len(e.entries)}
	if page < 1 || perPage < 1 {
		return p
	}
	// compare before multiplying so huge page numbers cannot overflow
	if page-1 >= (len(e.entries)+perPage-1)/perPage {
		return p
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(e.entries))
	p.Titles = make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p.Titles = append(p.Titles, e.entries[i].Title)
	}
	return p
}

// Search returns up to limit titles for an autocomplete query.
func (e *Engine) Search(query string, limit int) []string {
	ids := e.matcher.Search(query, limit)
	titles := make([]string, len(ids))
	for i, idx := range ids {
		titles[i] = e.entries[idx].Title
	}
	metrics.RecordSearch(len(titles))
	return titles
}

// EntryByID returns the first entry with the given movie ID.
func (e *Engine) EntryByID(id int64) (*catalog.Entry, bool) {
	i, ok := e.byID[id]
	if !ok {
		return nil, false
	}
	return &e.entries[i], true
}

// Stats returns build information and, when caching is enabled, the
// current state of the result cache.
func (e *Engine) Stats() Stats {
	stats := e.stats
	if e.results != nil {
		hits, misses := e.results.Stats()
		stats.Cache = &CacheStats{Entries: e.results.Len(), Hits: hits, Misses: misses}
	}
	return stats
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}
