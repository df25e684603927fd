// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// missingTitleMessage is the error for an absent or blank title.
const missingTitleMessage = "Please provide a movie title"

// notFoundMessage is the error for a title that resolves to nothing.
const notFoundMessage = "Movie not found in database"

// Recommend handles GET /recommend.
//
// @Summary Recommend similar movies
// @Description Resolves the title exactly (case-insensitive) or fuzzily and returns the most similar movies by content.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Movie title"
// @Param k query int false "Number of recommendations (default from config)"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} ErrorResponse "Missing title or invalid parameter"
// @Failure 404 {object} ErrorResponse "No matching title; includes suggestions"
// @Failure 503 {object} ErrorResponse "Engine not loaded"
// @Router /recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if strings.TrimSpace(title) == "" {
		respondJSON(w, r, http.StatusBadRequest, &ErrorResponse{Error: missingTitleMessage, Code: CodeValidation})
		return
	}

	eng, ok := h.engine(w, r)
	if !ok {
		return
	}

	k, perr := getIntParam(r, "k", eng.Config().TopK)
	if perr != nil {
		respondJSON(w, r, http.StatusBadRequest, perr)
		return
	}

	req := RecommendRequest{Title: title, K: k}
	if verr := validateRequest(&req); verr != nil {
		respondJSON(w, r, http.StatusBadRequest, verr)
		return
	}
	req.K = min(req.K, h.api.MaxRecommendations)

	rec, err := eng.Lookup(req.Title, req.K)
	if err != nil {
		var nf *recommend.NotFoundError
		if errors.As(err, &nf) {
			logging.Ctx(r.Context()).Debug().
				Str("title", sanitizeLogValue(req.Title)).
				Int("suggestions", len(nf.Suggestions)).
				Msg("Title not found")
			respondJSON(w, r, http.StatusNotFound, &ErrorResponse{
				Error:       notFoundMessage,
				Code:        CodeNotFound,
				Suggestions: nf.Suggestions,
			})
			return
		}
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to compute recommendations", err)
		return
	}

	respondJSON(w, r, http.StatusOK, newRecommendResponse(rec))
}
