// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A singleton validator checks the query parameter structs decoded by the API
// handlers. Error messages name the request parameter (from the `query` struct
// tag) and convert to the VALIDATION_ERROR API error.
//
// # Custom Validators
//
//   - notblank: string must contain a non-whitespace character
//
// # Usage
//
//	type SearchRequest struct {
//	    Query string `query:"q" validate:"required,notblank,max=200"`
//	    Limit int    `query:"limit" validate:"min=1,max=50"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message)
//	    return
//	}
package validation
