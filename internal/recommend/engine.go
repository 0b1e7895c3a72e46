// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine orchestrates the two-stage pipeline behind a single operation,
// Recommend. It owns all loaded artifacts, carries no per-request state,
// and is safe for unlimited concurrent use once Ready: the hot path takes
// no locks because nothing on it writes shared state.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *Catalog

	generator *candidateGenerator
	ranker    *rankingModel

	modelVersion string
	loadedAt     time.Time

	state atomic.Int32

	// Counters for the status endpoint. Atomics, not request state.
	requestCount  atomic.Int64
	fallbackCount atomic.Int64
}

// Status is a point-in-time snapshot of engine health for the status API.
type Status struct {
	State         string    `json:"state"`
	ModelVersion  string    `json:"model_version"`
	ItemCount     int       `json:"item_count"`
	LoadedAt      time.Time `json:"loaded_at"`
	RequestCount  int64     `json:"request_count"`
	FallbackCount int64     `json:"fallback_count"`
}

// NewEngine constructs the single shared engine instance from a validated
// artifact snapshot. It is called exactly once per process, synchronously,
// before any traffic is accepted. An error here is the only fatal condition
// in the design: the engine never reaches Ready and the process must not
// serve.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, art Artifacts, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if art.ModelVersion == "" {
		return nil, fmt.Errorf("artifact snapshot has no model version")
	}

	e := &Engine{
		config:       cfg,
		logger:       logger.With().Str("component", "recommend").Logger(),
		modelVersion: art.ModelVersion,
	}
	e.state.Store(int32(StateLoading))

	e.catalog = NewCatalog(art.Items, art.Aliases)
	e.generator = newCandidateGenerator(art.Neighbors, e.catalog, cfg.PoolSize)
	e.ranker = newRankingModel(art.SegmentMultipliers, art.TimeMultipliers)

	e.loadedAt = time.Now()
	e.state.Store(int32(StateReady))

	e.logger.Info().
		Str("model_version", e.modelVersion).
		Int("items", e.catalog.Len()).
		Int("pool_size", cfg.PoolSize).
		Int("k", cfg.DefaultK).
		Msg("engine ready")

	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Ready reports whether Recommend may be invoked. The boundary layer must
// not route traffic before this returns true.
func (e *Engine) Ready() bool {
	return e.State() == StateReady
}

// Recommend returns ranked complementary items for the given cart and raw
// context signals. It is a pure function of its arguments and the loaded
// artifacts: no I/O, no randomness in the ranked output, deterministic for
// identical (cart, segment, hour, model version).
//
// No degraded input produces an error. Unknown cart entries are dropped, a
// fully unknown or empty cart takes the popularity fallback, and malformed
// context signals map to defaults.
func (e *Engine) Recommend(cartItems []string, userSegment string, hour int) Result {
	start := time.Now()
	e.requestCount.Add(1)

	requestID := uuid.NewString()
	logger := e.logger.With().Str("request_id", requestID).Logger()

	cartIDs, unresolved := e.resolveCart(cartItems)
	if len(unresolved) > 0 {
		logger.Debug().
			Strs("unresolved", unresolved).
			Msg("dropped unknown cart items")
	}

	ctx := ResolveContext(hour, userSegment)

	candidates, fallback := e.generator.Generate(cartIDs)
	if fallback {
		e.fallbackCount.Add(1)
	}

	for i := range candidates {
		candidates[i].RankScore = e.ranker.Score(candidates[i].ID, candidates[i].BaseScore, ctx)
	}

	recommendations := finalizeCandidates(candidates, e.config.DefaultK, e.catalog)

	logger.Debug().
		Int("cart", len(cartIDs)).
		Int("candidates", len(candidates)).
		Int("returned", len(recommendations)).
		Bool("fallback", fallback).
		Str("time_of_day", ctx.TimeOfDay.String()).
		Str("segment", ctx.UserSegment.String()).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("recommendation complete")

	return Result{
		Recommendations: recommendations,
		Context:         ctx,
		ModelVersion:    e.modelVersion,
		Fallback:        fallback,
		Unresolved:      unresolved,
		RequestID:       requestID,
		CandidateCount:  len(candidates),
	}
}

// resolveCart maps raw cart entries to item IDs, dropping duplicates and
// unknown names. Unresolved entries are reported back for diagnostics.
func (e *Engine) resolveCart(cartItems []string) (ids []ItemID, unresolved []string) {
	seen := make(map[ItemID]struct{}, len(cartItems))
	for _, raw := range cartItems {
		id, ok := e.catalog.Resolve(raw)
		if !ok {
			unresolved = append(unresolved, raw)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, unresolved
}

// ModelVersion returns the loaded snapshot version.
func (e *Engine) ModelVersion() string {
	return e.modelVersion
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// GetStatus returns a snapshot of engine health.
func (e *Engine) GetStatus() Status {
	return Status{
		State:         e.State().String(),
		ModelVersion:  e.modelVersion,
		ItemCount:     e.catalog.Len(),
		LoadedAt:      e.loadedAt,
		RequestCount:  e.requestCount.Load(),
		FallbackCount: e.fallbackCount.Load(),
	}
}
