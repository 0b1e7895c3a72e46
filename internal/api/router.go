// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cartsense/cartsense/internal/config"
	"github.com/cartsense/cartsense/internal/recommend"
)

// Router assembles the service's HTTP surface.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter builds the router from the loaded configuration and the shared
// engine instance.
func NewRouter(cfg *config.Config, engine *recommend.Engine, version string) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:       NewHandler(engine, version),
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup configures all routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDHeader())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger())
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints with a permissive limiter for monitoring probes.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/healthz", router.handler.HealthLive)
		r.Get("/readyz", router.handler.HealthReady)
	})

	// Recommendation API.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Post("/api/recommend", router.handler.Recommend)
		r.Get("/api/v1/status", router.handler.Status)
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())

	// Built-in demo page.
	r.Get("/", router.handler.Index)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown route", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed for this route", nil)
	})

	return r
}
