// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
)

// Scored pairs a catalog index with its similarity to the queried entry.
type Scored struct {
	Index int
	Score float64
}

// Recommend ranks every entry other than index by similarity to it and
// returns the top k. Equal scores keep catalog order. The queried entry is
// excluded by position, so duplicates scoring 1.0 are still returned.
func Recommend(m *algorithms.SimilarityMatrix, index, k int) ([]Scored, error) {
	if m == nil {
		return nil, errors.New("similarity matrix is nil")
	}

	row, err := m.Row(index)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if k <= 0 {
		return []Scored{}, nil
	}

	ranked := make([]Scored, 0, len(row)-1)
	for j, s := range row {
		if j == index {
			continue
		}
		ranked = append(ranked, Scored{Index: j, Score: s})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked, nil
}
