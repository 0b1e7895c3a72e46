// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

// Package recommend implements the two-stage cart recommendation engine.
//
// Given a shopping cart (free-text item names) and a request context
// (hour of day, user segment), the engine returns a ranked list of
// complementary items in two stages:
//
//   - Stage 1 (candidate generation): cheap, high-recall retrieval from a
//     pre-computed co-occurrence index. Weights for a candidate are summed
//     across all cart items and max-normalized to [0, 1]. Carts that resolve
//     to nothing known fall back to a global popularity ranking.
//   - Stage 2 (ranking): precise, context-aware rescoring. Each candidate's
//     base score is multiplied by per-(segment, item) and per-(daypart, item)
//     factors from the loaded model artifact, defaulting to 1.0 for pairs the
//     model has never seen.
//
// The final score is the arithmetic mean of both stages, giving equal trust
// to the recall signal and the ranking signal.
//
// # Serving Contract
//
// One Engine instance is constructed at process start from immutable artifact
// snapshots and shared read-only by all request handlers. Recommend performs
// no I/O, takes no locks, and is deterministic for identical inputs and model
// version. Artifact load failure is the only fatal condition; every
// per-request degradation (unknown items, empty carts, unparseable context
// signals) resolves to a valid, possibly generic, result.
//
// A new model version requires a new Engine in a fresh process. There is no
// hot reload by design.
package recommend
