// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package models defines the JSON shapes of the HTTP API.
package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnknownReducer     = "UNKNOWN_REDUCER"
	CodeMissingColumn      = "MISSING_COLUMN"
	CodeNotFound           = "NOT_FOUND"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeUnauthorized       = "AUTHENTICATION_ERROR"
	CodeForbidden          = "AUTHORIZATION_ERROR"
	CodeNoData             = "NO_DATA"
	CodeInternal           = "INTERNAL_ERROR"
)

// APIResponse wraps every JSON response of the API.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"accidents": 3, "casualties": 5},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "dataset_version": 4,
//	    "query_time_ms": 3
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "MISSING_COLUMN",
//	    "message": "density map: missing column(s) Latitude, Longitude",
//	    "details": {"feature": "density map", "columns": ["Latitude", "Longitude"]}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata carries timing and cache information. DatasetVersion is the
// snapshot the data was computed from.
type Metadata struct {
	Timestamp      time.Time `json:"timestamp"`
	DatasetVersion uint64    `json:"dataset_version,omitempty"`
	QueryTimeMS    int64     `json:"query_time_ms,omitempty"`
	Cached         bool      `json:"cached,omitempty"`
}

// APIError is the error part of an APIResponse.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
