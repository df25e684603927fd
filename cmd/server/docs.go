// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// @title Reelmatch API
// @version 1.0
// @description Content-based movie recommendations over the TMDB 5000 catalog.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {"error": "Movie not found in database", "code": "NOT_FOUND", "suggestions": ["Avatar"]}
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default: 100 requests per minute per IP on API routes.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelmatch
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
//
// @tag.name Recommendations
// @tag.description Title lookup and similar-movie ranking
//
// @tag.name Catalog
// @tag.description Catalog browsing and autocomplete
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
