// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"fmt"
)

// Index is the fitted vectorizer together with the pairwise similarity
// matrix of the documents it was fitted on.
type Index struct {
	Vectorizer *Vectorizer
	Matrix     *SimilarityMatrix
}

// BuildIndex fits a TF-IDF vectorizer on docs and computes their cosine
// similarity matrix. Row i of the matrix corresponds to docs[i].
func BuildIndex(ctx context.Context, docs []string, cfg TFIDFConfig, workers int) (*Index, error) {
	if ContextCancelled(ctx) {
		return nil, fmt.Errorf("build index: %w", ctx.Err())
	}

	vec := NewVectorizer(cfg)
	vectors := vec.FitTransform(docs)

	matrix, err := BuildSimilarity(ctx, vectors, workers)
	if err != nil {
		return nil, err
	}
	return &Index{Vectorizer: vec, Matrix: matrix}, nil
}
