// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeRateLimited = "RATE_LIMITED"
	CodeNotReady    = "NOT_READY"
	CodeInternal    = "INTERNAL_ERROR"
)

// Movie is the public representation of a catalog entry.
type Movie struct {
	ID       int64    `json:"id" example:"19995"`
	Title    string   `json:"title" example:"Avatar"`
	Runtime  *float64 `json:"runtime" example:"162"`
	Director []string `json:"director"`
	Cast     []string `json:"cast"`
	Genres   []string `json:"genres"`
	Overview string   `json:"overview"`
}

// RecommendedMovie is a Movie with its similarity to the searched movie.
type RecommendedMovie struct {
	Movie
	Similarity float64 `json:"similarity" example:"0.42"`
}

// RecommendResponse is the body of GET /recommend.
type RecommendResponse struct {
	SearchedMovie   Movie              `json:"searched_movie"`
	Match           string             `json:"match" example:"exact"`
	Score           int                `json:"score" example:"100"`
	Recommendations []RecommendedMovie `json:"recommendations"`
}

// MoviesResponse is the body of GET /movies.
type MoviesResponse struct {
	Page        int      `json:"page" example:"1"`
	PerPage     int      `json:"per_page" example:"20"`
	Movies      []string `json:"movies"`
	TotalMovies int      `json:"total_movies" example:"4803"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Matches []string `json:"matches"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error       string                 `json:"error" example:"Movie not found in database"`
	Code        string                 `json:"code" example:"NOT_FOUND"`
	Details     map[string]interface{} `json:"details,omitempty"`
	Suggestions []string               `json:"suggestions,omitempty"`
}

// LiveResponse is the body of GET /health/live.
type LiveResponse struct {
	Status string  `json:"status" example:"alive"`
	Uptime float64 `json:"uptime_seconds"`
}

// ReadyResponse is the body of GET /health/ready.
type ReadyResponse struct {
	Status string           `json:"status" example:"ready"`
	Uptime float64          `json:"uptime_seconds"`
	Engine *recommend.Stats `json:"engine,omitempty"`
}

func newMovie(e *catalog.Entry) Movie {
	return Movie{
		ID:       e.ID,
		Title:    e.Title,
		Runtime:  e.Runtime,
		Director: nonNil(e.Director),
		Cast:     nonNil(e.TopCast),
		Genres:   nonNil(e.Genres),
		Overview: e.Overview,
	}
}

func newRecommendResponse(rec *recommend.Recommendation) RecommendResponse {
	resp := RecommendResponse{
		SearchedMovie:   newMovie(rec.Movie),
		Match:           string(rec.Match),
		Score:           rec.Score,
		Recommendations: make([]RecommendedMovie, len(rec.Items)),
	}
	for i, item := range rec.Items {
		resp.Recommendations[i] = RecommendedMovie{Movie: newMovie(item.Entry), Similarity: item.Similarity}
	}
	return resp
}

func uptime(start time.Time) float64 {
	return time.Since(start).Seconds()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
