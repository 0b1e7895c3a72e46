// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

// Package api provides the HTTP boundary of CartSense: Chi routing,
// middleware, and the request handlers that translate between the wire
// format and the recommendation engine.
//
// The boundary never surfaces engine degradations as errors. Request-level
// failures it owns are schema violations (malformed JSON, failed
// validation), an engine that has not finished loading, and rate limiting;
// everything else is a success response, possibly served from the
// popularity fallback.
package api
