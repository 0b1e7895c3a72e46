// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

// Package models holds the wire-level request and response types of the
// CartSense HTTP API.
package models

import "time"

// APIResponse is the standardized envelope used by all HTTP endpoints.
//
// Status is "success" or "error". Data carries the payload on success;
// Error carries structured details on failure. Metadata is always present.
//
// Example:
//
//	{
//	  "status": "success",
//	  "data": {"recommendations": [...]},
//	  "metadata": {"timestamp": "2026-08-28T12:00:00Z", "query_time_ms": 2}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the structured error payload of an error response.
//
// Common codes:
//   - VALIDATION_ERROR: request body failed validation
//   - NOT_READY: engine has not finished loading its model
//   - NOT_FOUND: unknown route
//   - METHOD_NOT_ALLOWED: wrong HTTP verb
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendRequest is the body of POST /api/recommend.
//
// CartItems is required and non-empty at the schema level; entries that do
// not resolve against the catalog are dropped server-side rather than
// rejected. UserSegment and Hour are optional context signals: a missing
// segment defaults to "Premium" and a missing hour defaults to the server's
// wall-clock hour.
type RecommendRequest struct {
	CartItems   []string `json:"cart_items" validate:"required,min=1,dive,max=200"`
	UserSegment *string  `json:"user_segment,omitempty" validate:"omitempty,max=50"`
	Hour        *int     `json:"hour,omitempty"`
}

// RecommendResponse is the data payload of a successful recommendation call.
type RecommendResponse struct {
	Cart            []string             `json:"cart"`
	InferredContext InferredContext      `json:"inferred_context"`
	Recommendations []RecommendationItem `json:"recommendations"`
	ModelVersion    string               `json:"model_version"`
	Fallback        bool                 `json:"fallback,omitempty"`
	Unresolved      []string             `json:"unresolved_items,omitempty"`
}

// InferredContext echoes the context the engine resolved from raw signals.
type InferredContext struct {
	TimeOfDay   string `json:"time_of_day"`
	UserSegment string `json:"user_segment"`
}

// RecommendationItem is one ranked suggestion.
type RecommendationItem struct {
	Item  string  `json:"item"`
	Score float64 `json:"score"`
}

// StatusResponse is the data payload of GET /api/v1/status.
type StatusResponse struct {
	Service       string    `json:"service"`
	Version       string    `json:"version"`
	State         string    `json:"state"`
	ModelVersion  string    `json:"model_version"`
	ItemCount     int       `json:"item_count"`
	LoadedAt      time.Time `json:"loaded_at"`
	RequestCount  int64     `json:"request_count"`
	FallbackCount int64     `json:"fallback_count"`
	UptimeSeconds int64     `json:"uptime_seconds"`
}
