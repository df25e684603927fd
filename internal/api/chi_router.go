// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/reelmatch/internal/middleware"
)

// defaultSlowRequest is the access log threshold for a slow request.
const defaultSlowRequest = time.Second

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	timeout       time.Duration
	slowRequest   time.Duration
}

// NewRouter creates a router. timeout bounds each API request; zero
// disables the per-request deadline.
func NewRouter(handler *Handler, chiMiddleware *ChiMiddleware, timeout time.Duration) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMiddleware,
		timeout:       timeout,
		slowRequest:   defaultSlowRequest,
	}
}

// SetupChi builds the HTTP handler for all routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global Middleware Stack, applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(router.slowRequest))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusNotFound, &ErrorResponse{Error: "Route not found", Code: CodeNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusMethodNotAllowed, &ErrorResponse{Error: "Method not allowed", Code: "METHOD_NOT_ALLOWED"})
	})

	// Health Endpoints
	r.Route("/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Recommendation API
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		if router.timeout > 0 {
			r.Use(chimiddleware.Timeout(router.timeout))
		}
		r.Use(middleware.Compression)

		r.Get("/recommend", router.handler.Recommend)
		r.Get("/movies", router.handler.Movies)
		r.Get("/movies/{id}", router.handler.Movie)
		r.Get("/search", router.handler.Search)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
