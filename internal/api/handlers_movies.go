// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Movies handles GET /movies.
//
// @Summary List catalog titles
// @Description Returns one page of titles in catalog order. Pages past the end are empty.
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number, 1-based" default(1)
// @Param per_page query int false "Titles per page" default(20)
// @Success 200 {object} MoviesResponse
// @Failure 400 {object} ErrorResponse
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	eng, ok := h.engine(w, r)
	if !ok {
		return
	}

	page, perr := getIntParam(r, "page", 1)
	if perr != nil {
		respondJSON(w, r, http.StatusBadRequest, perr)
		return
	}
	perPage, perr := getIntParam(r, "per_page", h.api.DefaultPageSize)
	if perr != nil {
		respondJSON(w, r, http.StatusBadRequest, perr)
		return
	}

	req := MoviesRequest{Page: page, PerPage: perPage}
	if verr := validateRequest(&req); verr != nil {
		respondJSON(w, r, http.StatusBadRequest, verr)
		return
	}
	req.PerPage = min(req.PerPage, h.api.MaxPageSize)

	p := eng.Page(req.Page, req.PerPage)
	respondJSON(w, r, http.StatusOK, &MoviesResponse{
		Page:        p.Page,
		PerPage:     p.PerPage,
		Movies:      p.Titles,
		TotalMovies: p.Total,
	})
}

// Movie handles GET /movies/{id}.
//
// @Summary Get a movie
// @Description Returns the catalog entry with the given TMDB id.
// @Tags Catalog
// @Produce json
// @Param id path int true "TMDB movie id"
// @Success 200 {object} Movie
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/{id} [get]
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	eng, ok := h.engine(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, &ErrorResponse{
			Error:   "id must be an integer",
			Code:    CodeValidation,
			Details: map[string]interface{}{"field": "id", "tag": "integer"},
		})
		return
	}

	entry, found := eng.EntryByID(id)
	if !found {
		respondJSON(w, r, http.StatusNotFound, &ErrorResponse{Error: notFoundMessage, Code: CodeNotFound})
		return
	}
	respondJSON(w, r, http.StatusOK, newMovie(entry))
}

// Search handles GET /search.
//
// @Summary Autocomplete titles
// @Description Matches titles by prefix, then substring, then fuzzy similarity. Queries shorter than two characters return no matches.
// @Tags Catalog
// @Produce json
// @Param q query string true "Partial title"
// @Param limit query int false "Maximum matches" default(10)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	eng, ok := h.engine(w, r)
	if !ok {
		return
	}

	limit, perr := getIntParam(r, "limit", h.api.DefaultSearchLimit)
	if perr != nil {
		respondJSON(w, r, http.StatusBadRequest, perr)
		return
	}

	req := SearchRequest{Query: r.URL.Query().Get("q"), Limit: limit}
	if verr := validateRequest(&req); verr != nil {
		respondJSON(w, r, http.StatusBadRequest, verr)
		return
	}
	req.Limit = min(req.Limit, h.api.MaxSearchLimit)

	respondJSON(w, r, http.StatusOK, &SearchResponse{Matches: eng.Search(req.Query, req.Limit)})
}
