// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Nested metadata columns.
const (
	FieldGenres   = "genres"
	FieldKeywords = "keywords"
	FieldCast     = "cast"
	FieldCrew     = "crew"
	FieldMovieID  = "movie_id"
	FieldRuntime  = "runtime"
)

// DataError reports a malformed source value. The loader recovers from it by
// treating the value as absent.
type DataError struct {
	Field string
	Title string
	Err   error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("malformed %s for %q: %v", e.Field, e.Title, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// namedRecord is the common shape of genre, keyword, cast and crew objects.
type namedRecord struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

func decodeRecords(raw string) ([]namedRecord, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var records []namedRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ExtractNames returns the name of every object in a JSON array, in order.
// An empty value yields an empty list.
func ExtractNames(raw string) ([]string, error) {
	records, err := decodeRecords(raw)
	if err != nil {
		return []string{}, err
	}
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names, nil
}

// ExtractTopCast returns the names of the first n cast members in billing order.
func ExtractTopCast(raw string, n int) ([]string, error) {
	names, err := ExtractNames(raw)
	if err != nil {
		return names, err
	}
	if len(names) > n {
		names = names[:n]
	}
	return names, nil
}

// ExtractDirectors returns the names of crew members whose job is "Director".
func ExtractDirectors(raw string) ([]string, error) {
	records, err := decodeRecords(raw)
	if err != nil {
		return []string{}, err
	}
	directors := make([]string, 0, 1)
	for _, r := range records {
		if r.Job == "Director" {
			directors = append(directors, r.Name)
		}
	}
	return directors, nil
}
