// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package match

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ratio scores the similarity of a and b on 0-100 as
// round(100 * (1 - distance/maxLen)) over lowercased runes.
// Two empty strings score 100.
func Ratio(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(maxLen))))
}

// SequenceRatio is the Ratcliff/Obershelp gestalt similarity of a and b on
// 0-1: twice the number of matching runes divided by the total rune count.
// Matching runes are found by recursively taking the longest common
// substring and matching the pieces to its left and right.
func SequenceRatio(a, b string) float64 {
	ra, rb := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingRunes(ra, rb)) / float64(total)
}

func matchingRunes(a, b []rune) int {
	i, j, size := longestCommon(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:i], b[:j]) +
		matchingRunes(a[i+size:], b[j+size:])
}

// longestCommon returns the earliest longest common substring of a and b as
// (start in a, start in b, length).
func longestCommon(a, b []rune) (int, int, int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	bestI, bestJ, bestSize := 0, 0, 0
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > bestSize {
					bestSize = curr[j]
					bestI, bestJ = i-curr[j], j-curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return bestI, bestJ, bestSize
}
