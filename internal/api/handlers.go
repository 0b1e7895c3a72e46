// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package api

import (
	"net/http"
	"time"

	"github.com/cartsense/cartsense/internal/metrics"
	"github.com/cartsense/cartsense/internal/models"
	"github.com/cartsense/cartsense/internal/recommend"
)

// defaultUserSegment is assumed when a request carries no segment signal.
const defaultUserSegment = "Premium"

// Handler owns the HTTP request handlers. It holds the single shared engine
// instance and is safe for concurrent use.
type Handler struct {
	engine    *recommend.Engine
	version   string
	startTime time.Time
}

// NewHandler creates the handler set around a ready engine.
func NewHandler(engine *recommend.Engine, version string) *Handler {
	return &Handler{
		engine:    engine,
		version:   version,
		startTime: time.Now(),
	}
}

// Recommend handles POST /api/recommend.
//
// The only request-level failures are schema violations and an engine that
// is not ready. Unknown cart items, unknown segments, and out-of-range
// hours degrade inside the engine and still yield a success response.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	if !h.engine.Ready() {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Model is still loading", nil)
		return
	}

	segment := defaultUserSegment
	if req.UserSegment != nil {
		segment = *req.UserSegment
	}
	hour := time.Now().Hour()
	if req.Hour != nil {
		hour = *req.Hour
	}

	result := h.engine.Recommend(req.CartItems, segment, hour)

	elapsed := time.Since(start)
	metrics.RecordRecommendation(
		result.Context.UserSegment.String(),
		result.Context.TimeOfDay.String(),
		elapsed,
		result.CandidateCount,
		result.Fallback,
		len(result.Unresolved),
	)

	recommendations := make([]models.RecommendationItem, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recommendations = append(recommendations, models.RecommendationItem{
			Item:  rec.Item,
			Score: rec.Score,
		})
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendResponse{
			Cart: req.CartItems,
			InferredContext: models.InferredContext{
				TimeOfDay:   result.Context.TimeOfDay.String(),
				UserSegment: result.Context.UserSegment.String(),
			},
			Recommendations: recommendations,
			ModelVersion:    result.ModelVersion,
			Fallback:        result.Fallback,
			Unresolved:      result.Unresolved,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: elapsed.Milliseconds(),
			RequestID:   result.RequestID,
		},
	})
}

// Status handles GET /api/v1/status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	status := h.engine.GetStatus()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.StatusResponse{
			Service:       "cartsense",
			Version:       h.version,
			State:         status.State,
			ModelVersion:  status.ModelVersion,
			ItemCount:     status.ItemCount,
			LoadedAt:      status.LoadedAt,
			RequestCount:  status.RequestCount,
			FallbackCount: status.FallbackCount,
			UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive handles GET /healthz. The process is alive if it can answer.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles GET /readyz. Ready means the model is loaded and the
// engine serves traffic.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	if !h.engine.Ready() {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Model is still loading", nil)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]string{
			"status":        "ready",
			"model_version": h.engine.ModelVersion(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
