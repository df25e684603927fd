// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
)

// HealthLive handles liveness probe requests.
// Returns 200 while the process is up, loaded or not.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} LiveResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &LiveResponse{Status: "alive", Uptime: uptime(h.startTime)})
}

// HealthReady handles readiness probe requests.
// Returns 200 with engine stats once an engine is being served, 503 before.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	eng := h.engines.Engine()
	if eng == nil {
		respondJSON(w, r, http.StatusServiceUnavailable, &ReadyResponse{Status: "not_ready", Uptime: uptime(h.startTime)})
		return
	}
	stats := eng.Stats()
	respondJSON(w, r, http.StatusOK, &ReadyResponse{Status: "ready", Uptime: uptime(h.startTime), Engine: &stats})
}
