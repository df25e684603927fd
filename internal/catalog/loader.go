// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"github.com/tomtom215/reelmatch/internal/logging"
)

// ErrSourceMissing is returned when a source CSV file does not exist.
var ErrSourceMissing = errors.New("catalog source file missing")

// Source names the two TMDB CSV files merged into the catalog.
type Source struct {
	MoviesPath  string
	CreditsPath string
}

// LoadStats summarizes a load.
type LoadStats struct {
	Rows       int
	DataErrors map[string]int // recovered malformed values by field
}

// TotalDataErrors returns the number of recovered malformed values.
func (s LoadStats) TotalDataErrors() int {
	total := 0
	for _, n := range s.DataErrors {
		total += n
	}
	return total
}

const mergeQuery = `
WITH movies AS (
	SELECT *, row_number() OVER () AS rn
	FROM read_csv(%s, header = true, delim = ',', all_varchar = true, quote = '"', escape = '"')
), credits AS (
	SELECT *, row_number() OVER () AS rn
	FROM read_csv(%s, header = true, delim = ',', all_varchar = true, quote = '"', escape = '"')
)
SELECT c.movie_id, m.title, m.overview, m.genres, m.keywords, c."cast", c.crew, m.runtime
FROM movies m
JOIN credits c ON m.title = c.title
ORDER BY m.rn, c.rn`

// Load merges the movies and credits files on title and returns the catalog
// entries in movies-file order.
func Load(ctx context.Context, src Source) ([]Entry, LoadStats, error) {
	stats := LoadStats{DataErrors: make(map[string]int)}

	for _, path := range []string{src.MoviesPath, src.CreditsPath} {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, stats, fmt.Errorf("%w: %s", ErrSourceMissing, path)
			}
			return nil, stats, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	db, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, stats, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }() //nolint:errcheck // in-memory database

	query := fmt.Sprintf(mergeQuery, quoteLiteral(src.MoviesPath), quoteLiteral(src.CreditsPath))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, stats, fmt.Errorf("merge catalog sources: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var r rawRow
		if err := rows.Scan(&r.movieID, &r.title, &r.overview, &r.genres, &r.keywords,
			&r.cast, &r.crew, &r.runtime); err != nil {
			return nil, stats, fmt.Errorf("scan catalog row: %w", err)
		}

		entry, dataErrs := r.toEntry()
		for _, de := range dataErrs {
			stats.DataErrors[de.Field]++
			logging.Debug().Err(de.Err).Str("field", de.Field).Str("title", de.Title).
				Msg("Recovered malformed catalog value")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("iterate catalog rows: %w", err)
	}

	stats.Rows = len(entries)
	return entries, stats, nil
}

// rawRow is one merged row as text columns.
type rawRow struct {
	movieID  sql.NullString
	title    sql.NullString
	overview sql.NullString
	genres   sql.NullString
	keywords sql.NullString
	cast     sql.NullString
	crew     sql.NullString
	runtime  sql.NullString
}

// toEntry converts a raw row. Malformed values become empty lists or absent
// values and are returned as DataErrors.
func (r *rawRow) toEntry() (Entry, []*DataError) {
	e := Entry{
		Title:    r.title.String,
		Overview: r.overview.String,
	}

	var dataErrs []*DataError
	note := func(field string, err error) {
		if err != nil {
			dataErrs = append(dataErrs, &DataError{Field: field, Title: e.Title, Err: err})
		}
	}

	var err error
	e.Genres, err = ExtractNames(r.genres.String)
	note(FieldGenres, err)
	e.Keywords, err = ExtractNames(r.keywords.String)
	note(FieldKeywords, err)
	e.TopCast, err = ExtractTopCast(r.cast.String, MaxTopCast)
	note(FieldCast, err)
	e.Director, err = ExtractDirectors(r.crew.String)
	note(FieldCrew, err)

	if s := strings.TrimSpace(r.movieID.String); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		note(FieldMovieID, err)
		e.ID = id
	}

	if s := strings.TrimSpace(r.runtime.String); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && v < 0 {
			err = fmt.Errorf("negative runtime %g", v)
		}
		note(FieldRuntime, err)
		if err == nil {
			e.Runtime = &v
		}
	}

	return e, dataErrs
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Fingerprint identifies the current contents of the source files by size and
// modification time. It changes whenever either file is rewritten.
func Fingerprint(src Source) (string, error) {
	h := sha256.New()
	for _, path := range []string{src.MoviesPath, src.CreditsPath} {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		_, _ = fmt.Fprintf(h, "%s|%d|%d\n", path, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
