// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"strings"
)

// MaxTopCast is the number of billed cast members kept per entry.
const MaxTopCast = 3

// Entry is one catalog record. Entries are never mutated after loading.
type Entry struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Overview string   `json:"overview"`
	Genres   []string `json:"genres"`
	Keywords []string `json:"keywords"`
	TopCast  []string `json:"cast"`
	Director []string `json:"director"`
	// Runtime in minutes; nil when the source has no value.
	Runtime *float64 `json:"runtime"`
}

// BuildTag derives the tag text of an entry: genres, keywords, top cast and
// directors joined by single spaces. Nil lists contribute nothing.
func BuildTag(e *Entry) string {
	n := len(e.Genres) + len(e.Keywords) + len(e.TopCast) + len(e.Director)
	if n == 0 {
		return ""
	}

	parts := make([]string, 0, n)
	parts = append(parts, e.Genres...)
	parts = append(parts, e.Keywords...)
	parts = append(parts, e.TopCast...)
	parts = append(parts, e.Director...)
	return strings.Join(parts, " ")
}

// BuildTags returns the tag of every entry, in catalog order.
func BuildTags(entries []Entry) []string {
	tags := make([]string, len(entries))
	for i := range entries {
		tags[i] = BuildTag(&entries[i])
	}
	return tags
}

// Titles returns the title of every entry, in catalog order.
func Titles(entries []Entry) []string {
	titles := make([]string, len(entries))
	for i := range entries {
		titles[i] = entries[i].Title
	}
	return titles
}
