// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

const moviesCSV = `budget,genres,id,keywords,overview,runtime,title
237000000,"[{""id"": 28, ""name"": ""Action""}, {""id"": 878, ""name"": ""Science Fiction""}]",19995,"[{""id"": 1463, ""name"": ""culture clash""}, {""id"": 3386, ""name"": ""space war""}]","In the 22nd century, a paraplegic Marine is dispatched to Pandora.",162,Avatar
245000000,"[{""id"": 28, ""name"": ""Action""}]",206647,"[{""id"": 470, ""name"": ""spy""}]","A cryptic message sends Bond on a trail.",,Spectre
1000,"[{""id"": 18, ""name"": ""Drama""}]",1,[],Only in the movies file.,90,Orphan
5000,not json,2,"[{""id"": 9, ""name"": ""twist""}]","Has a broken genres column.",101,Broken
`

const creditsCSV = `movie_id,title,cast,crew
206647,Spectre,"[{""cast_id"": 1, ""name"": ""Daniel Craig""}]","[{""job"": ""Director"", ""name"": ""Sam Mendes""}]"
19995,Avatar,"[{""cast_id"": 242, ""name"": ""Sam Worthington""}, {""cast_id"": 3, ""name"": ""Zoe Saldana""}, {""cast_id"": 25, ""name"": ""Sigourney Weaver""}, {""cast_id"": 4, ""name"": ""Stephen Lang""}]","[{""job"": ""Director"", ""name"": ""James Cameron""}]"
2,Broken,[],[]
`

// The join on title yields every movies x credits pairing of a repeated
// title, the way TMDB's "The Host" does.
const duplicateMoviesCSV = `budget,genres,id,keywords,overview,runtime,title
1,"[{""id"": 18, ""name"": ""Drama""}]",101,[],first host,119,The Host
2,"[{""id"": 35, ""name"": ""Comedy""}]",102,[],zed,90,Zed
3,"[{""id"": 27, ""name"": ""Horror""}]",103,[],second host,125,The Host
`

const duplicateCreditsCSV = `movie_id,title,cast,crew
30,The Host,[],[]
20,Zed,[],[]
10,The Host,[],[]
`

func writeSources(t *testing.T) Source {
	t.Helper()
	return writeCSVs(t, moviesCSV, creditsCSV)
}

func writeCSVs(t *testing.T, movies, credits string) Source {
	t.Helper()

	dir := t.TempDir()
	src := Source{
		MoviesPath:  filepath.Join(dir, "movies.csv"),
		CreditsPath: filepath.Join(dir, "credits.csv"),
	}
	if err := os.WriteFile(src.MoviesPath, []byte(movies), 0o600); err != nil {
		t.Fatalf("write movies: %v", err)
	}
	if err := os.WriteFile(src.CreditsPath, []byte(credits), 0o600); err != nil {
		t.Fatalf("write credits: %v", err)
	}
	return src
}

func TestLoad(t *testing.T) {
	t.Parallel()

	entries, stats, err := Load(context.Background(), writeSources(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := Titles(entries); !reflect.DeepEqual(got, []string{"Avatar", "Spectre", "Broken"}) {
		t.Fatalf("titles = %v, want movies-file order without unmatched rows", got)
	}
	if stats.Rows != 3 {
		t.Errorf("stats.Rows = %d, want 3", stats.Rows)
	}

	avatar := entries[0]
	if avatar.ID != 19995 {
		t.Errorf("Avatar ID = %d, want 19995", avatar.ID)
	}
	if !reflect.DeepEqual(avatar.TopCast, []string{"Sam Worthington", "Zoe Saldana", "Sigourney Weaver"}) {
		t.Errorf("Avatar cast = %v", avatar.TopCast)
	}
	if !reflect.DeepEqual(avatar.Director, []string{"James Cameron"}) {
		t.Errorf("Avatar director = %v", avatar.Director)
	}
	if avatar.Runtime == nil || *avatar.Runtime != 162 {
		t.Errorf("Avatar runtime = %v, want 162", avatar.Runtime)
	}
	wantTag := "Action Science Fiction culture clash space war Sam Worthington Zoe Saldana Sigourney Weaver James Cameron"
	if tag := BuildTag(&avatar); tag != wantTag {
		t.Errorf("Avatar tag = %q, want %q", tag, wantTag)
	}

	if entries[1].Runtime != nil {
		t.Errorf("Spectre runtime = %v, want nil", *entries[1].Runtime)
	}

	broken := entries[2]
	if len(broken.Genres) != 0 {
		t.Errorf("Broken genres = %v, want empty", broken.Genres)
	}
	if !reflect.DeepEqual(broken.Keywords, []string{"twist"}) {
		t.Errorf("Broken keywords = %v, want [twist]", broken.Keywords)
	}
	if stats.DataErrors[FieldGenres] != 1 || stats.TotalDataErrors() != 1 {
		t.Errorf("DataErrors = %v, want one genres error", stats.DataErrors)
	}
}

func TestLoad_DuplicateTitles(t *testing.T) {
	t.Parallel()

	entries, stats, err := Load(context.Background(), writeCSVs(t, duplicateMoviesCSV, duplicateCreditsCSV))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	type row struct {
		Overview string
		ID       int64
	}
	want := []row{
		{"first host", 30},
		{"first host", 10},
		{"zed", 20},
		{"second host", 30},
		{"second host", 10},
	}

	got := make([]row, len(entries))
	for i, e := range entries {
		got[i] = row{Overview: e.Overview, ID: e.ID}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want movies order then credits order %v", got, want)
	}
	if stats.Rows != len(want) {
		t.Errorf("stats.Rows = %d, want %d", stats.Rows, len(want))
	}
}

func TestLoad_MissingSource(t *testing.T) {
	t.Parallel()

	src := writeSources(t)
	src.CreditsPath = filepath.Join(t.TempDir(), "absent.csv")

	_, _, err := Load(context.Background(), src)
	if !errors.Is(err, ErrSourceMissing) {
		t.Fatalf("Load() error = %v, want ErrSourceMissing", err)
	}
}

func TestRawRowToEntry(t *testing.T) {
	t.Parallel()

	r := rawRow{}
	r.title.String, r.title.Valid = "Odd", true
	r.movieID.String, r.movieID.Valid = "abc", true
	r.runtime.String, r.runtime.Valid = "-5", true

	e, errs := r.toEntry()
	if e.ID != 0 || e.Runtime != nil {
		t.Errorf("entry = %+v, want zero ID and nil runtime", e)
	}
	if len(errs) != 2 {
		t.Fatalf("errors = %v, want movie_id and runtime errors", errs)
	}
	for _, de := range errs {
		if de.Title != "Odd" {
			t.Errorf("DataError title = %q, want Odd", de.Title)
		}
	}
	if e.Genres == nil || e.Keywords == nil || e.TopCast == nil || e.Director == nil {
		t.Error("absent lists should be empty, not nil")
	}
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	src := writeSources(t)
	first, err := Fingerprint(src)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	again, _ := Fingerprint(src)
	if first != again {
		t.Error("fingerprint changed without file changes")
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(src.MoviesPath, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	changed, _ := Fingerprint(src)
	if changed == first {
		t.Error("fingerprint should change when a source file is modified")
	}

	if _, err := Fingerprint(Source{MoviesPath: "/nonexistent", CreditsPath: "/nonexistent"}); err == nil {
		t.Error("expected error for missing files")
	}
}
