// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
)

func testEntries() []catalog.Entry {
	runtime := 162.0
	return []catalog.Entry{
		{ID: 19995, Title: "Avatar", Overview: "A paraplegic marine on Pandora.", Genres: []string{"Action", "Science Fiction"}, Keywords: []string{"space war"}, TopCast: []string{"Sam Worthington"}, Director: []string{"James Cameron"}, Runtime: &runtime},
		{ID: 679, Title: "Aliens", Genres: []string{"Action", "Science Fiction"}, Keywords: []string{"space marine"}, TopCast: []string{"Sigourney Weaver"}, Director: []string{"James Cameron"}},
		{ID: 597, Title: "Titanic", Genres: []string{"Drama", "Romance"}, Keywords: []string{"shipwreck"}, TopCast: []string{"Leonardo DiCaprio"}, Director: []string{"James Cameron"}},
		{ID: 11036, Title: "The Notebook", Genres: []string{"Romance", "Drama"}, Keywords: []string{"love letter"}, TopCast: []string{"Ryan Gosling"}, Director: []string{"Nick Cassavetes"}},
		{ID: 206647, Title: "Spectre", Genres: []string{"Action"}, Keywords: []string{"spy"}},
	}
}

func testAPIConfig() config.APIConfig {
	return config.APIConfig{
		DefaultPageSize:    2,
		MaxPageSize:        3,
		DefaultSearchLimit: 10,
		MaxSearchLimit:     2,
		MaxRecommendations: 3,
	}
}

func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	entries := testEntries()
	idx, err := algorithms.BuildIndex(context.Background(), catalog.BuildTags(entries), algorithms.TFIDFConfig{}, 2)
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	return recommend.NewEngine(entries, idx, recommend.DefaultConfig(), recommend.Stats{Source: "test"})
}

// newTestServer serves the full router over eng. A nil eng leaves the
// holder empty.
func newTestServer(t *testing.T, eng *recommend.Engine, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()

	h := NewHandler(recommend.NewHolder(eng), testAPIConfig())
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	return NewRouter(h, NewChiMiddleware(mw), 0).SetupChi()
}

func doGet(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestRecommend_Exact(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)
	rec := doGet(t, srv, "/recommend?title=avatar&k=2")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decode[RecommendResponse](t, rec)

	if resp.SearchedMovie.Title != "Avatar" || resp.SearchedMovie.ID != 19995 {
		t.Errorf("searched_movie = %+v, want Avatar", resp.SearchedMovie)
	}
	if resp.SearchedMovie.Runtime == nil || *resp.SearchedMovie.Runtime != 162 {
		t.Errorf("runtime = %v, want 162", resp.SearchedMovie.Runtime)
	}
	if resp.Match != "exact" || resp.Score != 100 {
		t.Errorf("match = %s/%d, want exact/100", resp.Match, resp.Score)
	}
	if len(resp.Recommendations) != 2 {
		t.Fatalf("len(recommendations) = %d, want 2", len(resp.Recommendations))
	}
	if resp.Recommendations[0].Title != "Aliens" {
		t.Errorf("top recommendation = %s, want Aliens", resp.Recommendations[0].Title)
	}
	if resp.Recommendations[0].Similarity <= resp.Recommendations[1].Similarity {
		t.Errorf("recommendations not ordered by similarity: %+v", resp.Recommendations)
	}
}

func TestRecommend_FuzzyAndClamped(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)
	rec := doGet(t, srv, "/recommend?title=Avatr&k=40")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decode[RecommendResponse](t, rec)
	if resp.Match != "fuzzy" || resp.SearchedMovie.Title != "Avatar" {
		t.Errorf("got %s match on %s, want fuzzy Avatar", resp.Match, resp.SearchedMovie.Title)
	}
	if len(resp.Recommendations) != 3 {
		t.Errorf("len(recommendations) = %d, want MaxRecommendations 3", len(resp.Recommendations))
	}
	for _, m := range resp.Recommendations {
		if m.Cast == nil || m.Director == nil || m.Genres == nil {
			t.Errorf("movie %s has null list fields", m.Title)
		}
	}
}

func TestRecommend_Errors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)

	tests := []struct {
		name     string
		target   string
		status   int
		code     string
		message  string
		hasField string
	}{
		{name: "missing title", target: "/recommend", status: http.StatusBadRequest, code: CodeValidation, message: missingTitleMessage},
		{name: "blank title", target: "/recommend?title=%20%20", status: http.StatusBadRequest, code: CodeValidation, message: missingTitleMessage},
		{name: "malformed k", target: "/recommend?title=Avatar&k=ten", status: http.StatusBadRequest, code: CodeValidation, hasField: "k"},
		{name: "zero k", target: "/recommend?title=Avatar&k=0", status: http.StatusBadRequest, code: CodeValidation, hasField: "k"},
		{name: "unknown title", target: "/recommend?title=Qwertyuiop", status: http.StatusNotFound, code: CodeNotFound, message: notFoundMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doGet(t, srv, tt.target)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.status, rec.Body.String())
			}
			resp := decode[ErrorResponse](t, rec)
			if resp.Code != tt.code {
				t.Errorf("code = %s, want %s", resp.Code, tt.code)
			}
			if tt.message != "" && resp.Error != tt.message {
				t.Errorf("error = %q, want %q", resp.Error, tt.message)
			}
			if tt.hasField != "" && resp.Details["field"] != tt.hasField {
				t.Errorf("details = %v, want field %s", resp.Details, tt.hasField)
			}
		})
	}
}

func TestRecommend_NotFoundSuggestions(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)
	// too far for resolution, close enough for a suggestion
	rec := doGet(t, srv, "/recommend?title=Notebook%20Diaries")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decode[ErrorResponse](t, rec)
	if len(resp.Suggestions) == 0 || resp.Suggestions[0] != "The Notebook" {
		t.Errorf("suggestions = %v, want The Notebook first", resp.Suggestions)
	}
}

func TestMovies(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)

	tests := []struct {
		name    string
		target  string
		page    int
		perPage int
		movies  []string
	}{
		{name: "defaults", target: "/movies", page: 1, perPage: 2, movies: []string{"Avatar", "Aliens"}},
		{name: "second page", target: "/movies?page=2&per_page=2", page: 2, perPage: 2, movies: []string{"Titanic", "The Notebook"}},
		{name: "partial last page", target: "/movies?page=3&per_page=2", page: 3, perPage: 2, movies: []string{"Spectre"}},
		{name: "past the end", target: "/movies?page=9", page: 9, perPage: 2, movies: []string{}},
		{name: "per_page clamped", target: "/movies?per_page=500", page: 1, perPage: 3, movies: []string{"Avatar", "Aliens", "Titanic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doGet(t, srv, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			resp := decode[MoviesResponse](t, rec)
			if resp.Page != tt.page || resp.PerPage != tt.perPage || resp.TotalMovies != 5 {
				t.Errorf("page/per_page/total = %d/%d/%d, want %d/%d/5", resp.Page, resp.PerPage, resp.TotalMovies, tt.page, tt.perPage)
			}
			if len(resp.Movies) != len(tt.movies) {
				t.Fatalf("movies = %v, want %v", resp.Movies, tt.movies)
			}
			for i := range tt.movies {
				if resp.Movies[i] != tt.movies[i] {
					t.Errorf("movies[%d] = %s, want %s", i, resp.Movies[i], tt.movies[i])
				}
			}
		})
	}
}

func TestMovies_InvalidParams(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)
	for _, target := range []string{"/movies?page=0", "/movies?per_page=-1", "/movies?page=x"} {
		rec := doGet(t, srv, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestMovie(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)

	rec := doGet(t, srv, "/movies/597")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if m := decode[Movie](t, rec); m.Title != "Titanic" || m.Director[0] != "James Cameron" {
		t.Errorf("movie = %+v, want Titanic by James Cameron", m)
	}

	if rec := doGet(t, srv, "/movies/1"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", rec.Code)
	}
	if rec := doGet(t, srv, "/movies/abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id: status = %d, want 400", rec.Code)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)

	rec := doGet(t, srv, "/search?q=Tit")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if resp := decode[SearchResponse](t, rec); len(resp.Matches) == 0 || resp.Matches[0] != "Titanic" {
		t.Errorf("matches = %v, want Titanic first", resp.Matches)
	}

	rec = doGet(t, srv, "/search?q=a")
	if rec.Code != http.StatusOK {
		t.Fatalf("short query: status = %d", rec.Code)
	}
	if resp := decode[SearchResponse](t, rec); resp.Matches == nil || len(resp.Matches) != 0 {
		t.Errorf("short query matches = %v, want empty list", resp.Matches)
	}

	rec = doGet(t, srv, "/search?q=an&limit=99")
	if resp := decode[SearchResponse](t, rec); len(resp.Matches) > 2 {
		t.Errorf("limit not clamped: %v", resp.Matches)
	}

	if rec := doGet(t, srv, "/search"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing q: status = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)

	if rec := doGet(t, srv, "/health/live"); rec.Code != http.StatusOK {
		t.Errorf("live: status = %d", rec.Code)
	}

	for i := 0; i < 2; i++ {
		if rec := doGet(t, srv, "/recommend?title=Avatar"); rec.Code != http.StatusOK {
			t.Fatalf("recommend: status = %d", rec.Code)
		}
	}

	rec := doGet(t, srv, "/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready: status = %d", rec.Code)
	}
	resp := decode[ReadyResponse](t, rec)
	if resp.Status != "ready" || resp.Engine == nil || resp.Engine.Entries != 5 || resp.Engine.Source != "test" {
		t.Fatalf("ready = %+v", resp)
	}
	if c := resp.Engine.Cache; c == nil || c.Entries != 1 || c.Hits != 1 || c.Misses != 1 {
		t.Errorf("ready cache = %+v, want 1 entry, 1 hit, 1 miss", c)
	}
}

func TestNotReady(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, nil)

	if rec := doGet(t, srv, "/health/live"); rec.Code != http.StatusOK {
		t.Errorf("live without engine: status = %d, want 200", rec.Code)
	}
	for _, target := range []string{"/health/ready", "/recommend?title=Avatar", "/movies", "/search?q=av"} {
		if rec := doGet(t, srv, target); rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: status = %d, want 503", target, rec.Code)
		}
	}
}

func TestHolderSwapIsServed(t *testing.T) {
	t.Parallel()

	holder := recommend.NewHolder(nil)
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	srv := NewRouter(NewHandler(holder, testAPIConfig()), NewChiMiddleware(mw), 0).SetupChi()

	if rec := doGet(t, srv, "/movies"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("before swap: status = %d, want 503", rec.Code)
	}
	holder.Swap(newTestEngine(t))
	if rec := doGet(t, srv, "/movies"); rec.Code != http.StatusOK {
		t.Errorf("after swap: status = %d, want 200", rec.Code)
	}
}
