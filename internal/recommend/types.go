// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

// ItemID is the stable identifier of a catalog item.
type ItemID int

// Item is an immutable catalog entry.
type Item struct {
	// ID is the stable item identifier.
	ID ItemID `json:"id"`

	// Name is the canonical display name shown to users.
	Name string `json:"name"`

	// Popularity is the global popularity weight used for the cold-start
	// fallback ranking. Must be >= 0.
	Popularity float64 `json:"popularity"`

	// Features is an optional dense feature vector produced offline.
	// Unused by the reference scorer but carried through the snapshot.
	Features []float64 `json:"features,omitempty"`
}

// Neighbor is one entry of an item's co-occurrence list.
type Neighbor struct {
	// ID is the neighboring item.
	ID ItemID `json:"id"`

	// Weight is the offline co-occurrence weight. Must be >= 0.
	Weight float64 `json:"weight"`
}

// TimeOfDay is the coarse daypart bucket. The two-bucket design is a
// deliberate simplification: the upstream model is only trained on a
// lunch/dinner split.
type TimeOfDay int

const (
	// TimeLunch covers hours before 17:00.
	TimeLunch TimeOfDay = iota
	// TimeDinner covers 17:00 onward, and any unparseable hour signal.
	TimeDinner
)

// String returns a human-readable daypart name.
func (t TimeOfDay) String() string {
	switch t {
	case TimeLunch:
		return "Lunch"
	case TimeDinner:
		return "Dinner"
	default:
		return "Unknown"
	}
}

// UserSegment is the closed user segmentation used by the ranking model.
type UserSegment int

const (
	// SegmentPremium identifies paying subscribers.
	SegmentPremium UserSegment = iota
	// SegmentStandard identifies regular users.
	SegmentStandard
	// SegmentUnknown is the default for unrecognized segment labels.
	SegmentUnknown
)

// String returns a human-readable segment name.
func (s UserSegment) String() string {
	switch s {
	case SegmentPremium:
		return "Premium"
	case SegmentStandard:
		return "Standard"
	default:
		return "Unknown"
	}
}

// Context is the canonical request context fed to the ranking model.
// It is always valid: raw signals that fail to parse map to documented
// defaults, never to an error.
type Context struct {
	TimeOfDay   TimeOfDay   `json:"time_of_day"`
	UserSegment UserSegment `json:"user_segment"`
}

// Candidate is an item moving through the scoring pipeline.
// All three scores lie in [0, 1].
type Candidate struct {
	// ID is the candidate item.
	ID ItemID `json:"id"`

	// BaseScore is the Stage 1 retrieval score.
	BaseScore float64 `json:"base_score"`

	// RankScore is the Stage 2 contextual score.
	RankScore float64 `json:"rank_score"`

	// FinalScore is the combined score used for the output ordering.
	FinalScore float64 `json:"final_score"`
}

// Recommendation is one entry of the final ranked list.
type Recommendation struct {
	// Item is the canonical display name.
	Item string `json:"item"`

	// Score is the final score in [0, 1].
	Score float64 `json:"score"`
}

// Result is the outcome of a single Recommend call. It is always valid;
// degraded conditions produce a generic or empty list, never an error.
type Result struct {
	// Recommendations is ordered strictly descending by score, length <= K,
	// disjoint from the resolved cart, with no duplicates.
	Recommendations []Recommendation `json:"recommendations"`

	// Context is the resolved request context.
	Context Context `json:"context"`

	// ModelVersion identifies the artifact snapshot that produced the result.
	ModelVersion string `json:"model_version"`

	// Fallback reports whether the popularity cold-start path was used.
	Fallback bool `json:"fallback"`

	// Unresolved lists cart entries that did not match any catalog alias.
	// They are dropped from scoring, not fatal.
	Unresolved []string `json:"unresolved,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id"`

	// CandidateCount is the Stage 1 pool size before truncation to K.
	CandidateCount int `json:"candidate_count"`
}

// State is the engine lifecycle state. There is no Ready -> Loading
// transition: a new model version requires a new Engine instance.
type State int32

const (
	// StateUninitialized is the zero value before construction begins.
	StateUninitialized State = iota
	// StateLoading is the one-time artifact ingestion phase.
	StateLoading
	// StateReady is the only state in which Recommend may be invoked.
	StateReady
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Artifacts holds the decoded, validated model snapshot the engine is
// constructed from. Built by the storage package; immutable afterwards.
type Artifacts struct {
	// ModelVersion is the snapshot version shared by all artifact files.
	ModelVersion string

	// Items is the canonical item registry.
	Items []Item

	// Aliases maps normalized free-text forms to item identifiers.
	// Canonical display names are registered automatically; this map only
	// needs to carry additional spellings.
	Aliases map[string]ItemID

	// Neighbors is the co-occurrence index, sorted by weight descending.
	Neighbors map[ItemID][]Neighbor

	// SegmentMultipliers reweights (segment, item) pairs in Stage 2.
	SegmentMultipliers map[UserSegment]map[ItemID]float64

	// TimeMultipliers reweights (daypart, item) pairs in Stage 2.
	TimeMultipliers map[TimeOfDay]map[ItemID]float64
}
