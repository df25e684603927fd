// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Handler serves the recommendation endpoints.
type Handler struct {
	engines   *recommend.Holder
	api       config.APIConfig
	startTime time.Time
}

// NewHandler creates a handler that serves whatever engine holder currently
// holds.
func NewHandler(engines *recommend.Holder, api config.APIConfig) *Handler {
	return &Handler{
		engines:   engines,
		api:       api,
		startTime: time.Now(),
	}
}

// engine returns the current engine, writing a 503 when none is loaded.
func (h *Handler) engine(w http.ResponseWriter, r *http.Request) (*recommend.Engine, bool) {
	eng := h.engines.Engine()
	if eng == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeNotReady, "Recommendation engine is not ready", nil)
		return nil, false
	}
	return eng, true
}
