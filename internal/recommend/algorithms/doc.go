// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package algorithms implements the text similarity primitives behind the
// recommendation index.
//
// # Vectorization
//
// Vectorizer learns a vocabulary from a corpus of tag documents and maps each
// document to an L2-normalized TF-IDF SparseVector. Tokens are lowercase runs
// of at least two word characters; English stop words are dropped.
//
// # Similarity
//
// BuildSimilarity computes the full pairwise cosine matrix once, walking term
// postings so that only documents sharing a term are visited. The result is
// immutable and safe for concurrent reads.
//
//	v := algorithms.NewVectorizer(algorithms.TFIDFConfig{})
//	vectors := v.FitTransform(tags)
//	matrix, err := algorithms.BuildSimilarity(ctx, vectors, 0)
package algorithms
