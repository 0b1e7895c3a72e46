// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

// Package metrics defines the service's Prometheus instrumentation. All
// collectors are registered on the default registry via promauto and
// exposed on /metrics.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP boundary metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation pipeline metrics.
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests served",
		},
		[]string{"segment", "time_of_day"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Engine recommendation latency in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.2},
		},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidate_pool_size",
			Help:    "Number of candidates generated per request before truncation to K",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	RecommendFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_fallback_total",
			Help: "Total number of requests served from the popularity fallback",
		},
	)

	RecommendUnresolvedItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_unresolved_items_total",
			Help: "Total number of cart entries dropped as unresolvable",
		},
	)

	// Model and process metrics.
	EngineInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "engine_info",
			Help: "Loaded model version and catalog size",
		},
		[]string{"model_version"},
	)

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendation records one engine invocation.
func RecordRecommendation(segment, timeOfDay string, duration time.Duration, candidates int, fallback bool, unresolved int) {
	RecommendRequestsTotal.WithLabelValues(segment, timeOfDay).Inc()
	RecommendDuration.Observe(duration.Seconds())
	RecommendCandidates.Observe(float64(candidates))
	if fallback {
		RecommendFallbackTotal.Inc()
	}
	if unresolved > 0 {
		RecommendUnresolvedItems.Add(float64(unresolved))
	}
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetEngineInfo publishes the loaded model version with the catalog size as
// the gauge value.
func SetEngineInfo(modelVersion string, itemCount int) {
	EngineInfo.WithLabelValues(modelVersion).Set(float64(itemCount))
}

// SetAppInfo publishes build identity once at startup.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// TrackUptime updates the uptime gauge every 15 seconds until the context is
// canceled. Run it in its own goroutine from main.
func TrackUptime(ctx context.Context, start time.Time) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	AppUptime.Set(time.Since(start).Seconds())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			AppUptime.Set(time.Since(start).Seconds())
		}
	}
}
