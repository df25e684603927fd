// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// SimilarityMatrix is a symmetric N x N matrix of cosine similarities.
// Only the upper triangle (including the diagonal) is stored.
type SimilarityMatrix struct {
	n      int
	packed []float64
}

// Size returns N.
func (m *SimilarityMatrix) Size() int {
	return m.n
}

func (m *SimilarityMatrix) offset(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return i*m.n - i*(i-1)/2 + (j - i)
}

// At returns the similarity between entries i and j.
func (m *SimilarityMatrix) At(i, j int) float64 {
	return m.packed[m.offset(i, j)]
}

// Row returns a copy of row i.
func (m *SimilarityMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("row %d out of range [0, %d)", i, m.n)
	}
	row := make([]float64, m.n)
	for j := 0; j < m.n; j++ {
		row[j] = m.packed[m.offset(i, j)]
	}
	return row, nil
}

// BuildSimilarity computes pairwise cosine similarities of L2-normalized
// vectors. Rows are distributed across workers (0 selects runtime.NumCPU()).
// The diagonal is 1.0 for non-empty vectors and 0 for empty ones; values are
// clamped to [0, 1].
func BuildSimilarity(ctx context.Context, vectors []SparseVector, workers int) (*SimilarityMatrix, error) {
	n := len(vectors)
	m := &SimilarityMatrix{n: n, packed: make([]float64, n*(n+1)/2)}
	if n == 0 {
		return m, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	// term -> (doc, weight) postings, docs ascending
	type posting struct {
		doc    int
		weight float64
	}
	postings := make(map[int][]posting)
	for doc, vec := range vectors {
		for k, term := range vec.Indices {
			postings[term] = append(postings[term], posting{doc: doc, weight: vec.Values[k]})
		}
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc := make([]float64, n)
			for i := range rows {
				vec := vectors[i]
				for k, term := range vec.Indices {
					for _, p := range postings[term] {
						if p.doc > i {
							acc[p.doc] += vec.Values[k] * p.weight
						}
					}
				}

				base := m.offset(i, i)
				if vec.Len() > 0 {
					m.packed[base] = 1
				}
				for j := i + 1; j < n; j++ {
					s := acc[j]
					if s > 1 {
						s = 1
					} else if s < 0 {
						s = 0
					}
					m.packed[base+j-i] = s
					acc[j] = 0
				}
			}
		}()
	}

	var err error
	for i := 0; i < n; i++ {
		if ContextCancelled(ctx) {
			err = ctx.Err()
			break
		}
		rows <- i
	}
	close(rows)
	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}
	return m, nil
}
