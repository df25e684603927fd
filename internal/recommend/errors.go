// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a catalog index does not exist.
	ErrIndexOutOfRange = errors.New("catalog index out of range")

	// ErrEmptyCatalog is returned when setup produces no entries to serve.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// Setup stages reported by SetupError.
const (
	StageConfig   = "config"
	StageLoad     = "load"
	StageSnapshot = "snapshot"
	StageIndex    = "index"
)

// NotFoundError reports that no catalog title matched a query. Suggestions
// are close titles for display only.
type NotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no catalog title matches %q", e.Query)
}

// SetupError reports a failure while building the engine. The engine is
// never served after a SetupError.
type SetupError struct {
	Stage string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("engine setup failed at %s: %v", e.Stage, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
