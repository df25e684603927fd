// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api exposes the recommendation engine over HTTP.

Routes:

	GET /recommend?title=<title>&k=<n>     similar movies for a title
	GET /movies?page=<n>&per_page=<n>      paginated catalog titles
	GET /movies/{id}                       one movie by TMDB id
	GET /search?q=<query>&limit=<n>        autocomplete
	GET /health/live                       liveness probe
	GET /health/ready                      readiness probe with engine stats
	GET /metrics                           Prometheus metrics
	GET /swagger/*                         Swagger UI

Handlers read the current engine from a recommend.Holder on every request,
so a rebuilt engine swapped in by the data watcher is served without a
restart.

Error responses share one shape:

	{"error": "Movie not found in database", "code": "NOT_FOUND", "suggestions": ["Avatar"]}

Request parameters are validated with go-playground/validator through the
validation package; failures return 400 with code VALIDATION_ERROR.
*/
package api
