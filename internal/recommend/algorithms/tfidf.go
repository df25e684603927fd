// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SparseVector is a term-weight vector with indices in ascending order.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero terms.
func (v SparseVector) Len() int {
	return len(v.Indices)
}

// Dot returns the dot product of two sparse vectors.
func (v SparseVector) Dot(o SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			sum += v.Values[i] * o.Values[j]
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// TFIDFConfig configures a Vectorizer.
type TFIDFConfig struct {
	// StopWords are dropped after tokenization. Nil selects the English list;
	// an empty non-nil set disables filtering.
	StopWords map[string]struct{}

	// MinTokenLength is the minimum token length in runes.
	// Default: 2.
	MinTokenLength int
}

// Vectorizer turns documents into L2-normalized TF-IDF vectors over a
// vocabulary learned from the corpus passed to Fit.
//
// Weights are raw term counts times a smoothed inverse document frequency,
// idf(t) = ln((1+n)/(1+df(t))) + 1, where n is the corpus size.
type Vectorizer struct {
	stopWords      map[string]struct{}
	minTokenLength int

	vocabulary map[string]int
	idf        []float64
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(cfg TFIDFConfig) *Vectorizer {
	if cfg.StopWords == nil {
		cfg.StopWords = englishStopWords
	}
	if cfg.MinTokenLength <= 0 {
		cfg.MinTokenLength = 2
	}
	return &Vectorizer{
		stopWords:      cfg.StopWords,
		minTokenLength: cfg.MinTokenLength,
	}
}

// Tokenize lowercases doc and splits it into runs of letters, digits and
// underscores, dropping short tokens and stop words.
func (v *Vectorizer) Tokenize(doc string) []string {
	fields := strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < v.minTokenLength {
			continue
		}
		if _, stop := v.stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Fit learns the vocabulary and document frequencies of docs. Vocabulary
// indices follow the sorted order of terms.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range v.Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, t := range terms {
		v.vocabulary[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
}

// VocabularySize returns the number of learned terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// Transform vectorizes doc against the fitted vocabulary. Unknown terms are
// ignored; a document with no known terms yields an empty vector.
func (v *Vectorizer) Transform(doc string) SparseVector {
	counts := make(map[int]float64)
	for _, tok := range v.Tokenize(doc) {
		if idx, ok := v.vocabulary[tok]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	vec := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	var norm float64
	for _, idx := range vec.Indices {
		w := counts[idx] * v.idf[idx]
		vec.Values = append(vec.Values, w)
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec.Values {
		vec.Values[i] /= norm
	}
	return vec
}

// FitTransform fits the vocabulary on docs and returns their vectors.
func (v *Vectorizer) FitTransform(docs []string) []SparseVector {
	v.Fit(docs)
	vectors := make([]SparseVector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return vectors
}
