// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch serves content-based movie recommendations over the TMDB 5000
movies and credits datasets. Each movie is reduced to a tag document (genres,
keywords, top cast, director), vectorized with TF-IDF, and compared to every
other movie by cosine similarity.

# Application Architecture

	RootSupervisor ("reelmatch")
	├── DataSupervisor ("data-layer")
	│   └── DataWatcher (optional, DATA_WATCH=true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: koanf v2 with defaults, optional YAML file, environment
 2. Logging: zerolog with JSON/console output
 3. Snapshot store: badger directory holding the last loaded catalog
 4. Engine: snapshot or CSV rebuild via DuckDB, then the similarity index
 5. HTTP router: chi with the middleware stack
 6. Supervisor tree: suture v4

A setup failure exits with status 1 before anything listens.

# Configuration

Common environment variables:

	HTTP_PORT          listen port (default 5000)
	MOVIES_CSV         tmdb_5000_movies.csv path
	CREDITS_CSV        tmdb_5000_credits.csv path
	SNAPSHOT_DIR       badger snapshot directory (empty disables snapshots)
	INIT_STRATEGY      snapshot | rebuild
	DATA_WATCH         rebuild when the CSV files change
	LOG_LEVEL          trace, debug, info, warn, error
	LOG_FORMAT         json | console
	CONFIG_PATH        optional YAML config file

See internal/config for the full list.
*/
package main
