// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

// Package storage loads the offline-produced artifact snapshot the
// recommendation engine is constructed from.
//
// A snapshot is three JSON files sharing one model version string:
//
//   - catalog.json: item registry and free-text alias map
//   - cooccurrence.json: per-item neighbor lists with weights
//   - ranking.json: contextual multiplier tables for Stage 2
//
// The files are produced by the offline training pipeline, loaded wholesale
// once at process start, and never mutated during serving. Any defect found
// at load time (unparseable JSON, version skew between files, dangling IDs,
// negative weights) is a model load failure: the caller must not serve.
package storage

// CatalogFile is the on-disk schema of catalog.json.
type CatalogFile struct {
	// ModelVersion identifies the snapshot. Must match across all files.
	ModelVersion string `json:"model_version"`

	// Items is the canonical item registry.
	Items []CatalogItem `json:"items"`

	// Aliases maps additional text forms to item identifiers. Keys are
	// stored in their raw form and normalized at load.
	Aliases map[string]int `json:"aliases,omitempty"`
}

// CatalogItem is one registry entry of catalog.json.
type CatalogItem struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Popularity float64   `json:"popularity"`
	Features   []float64 `json:"features,omitempty"`
}

// CoOccurrenceFile is the on-disk schema of cooccurrence.json.
type CoOccurrenceFile struct {
	ModelVersion string `json:"model_version"`

	// Neighbors maps an item ID (as a JSON object key) to its weighted
	// neighbor list. File order is not trusted; lists are re-sorted by
	// weight at load.
	Neighbors map[string][]NeighborEntry `json:"neighbors"`
}

// NeighborEntry is one weighted edge of the co-occurrence index.
type NeighborEntry struct {
	ID     int     `json:"id"`
	Weight float64 `json:"weight"`
}

// RankingFile is the on-disk schema of ranking.json.
type RankingFile struct {
	ModelVersion string `json:"model_version"`

	// SegmentMultipliers maps segment name -> item ID -> multiplier.
	// Valid segment names are "Premium", "Standard" and "Unknown".
	SegmentMultipliers map[string]map[string]float64 `json:"segment_multipliers,omitempty"`

	// TimeMultipliers maps daypart name -> item ID -> multiplier.
	// Valid daypart names are "Lunch" and "Dinner".
	TimeMultipliers map[string]map[string]float64 `json:"time_multipliers,omitempty"`
}
