// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package api

import (
	"sync/atomic"
	"time"

	"github.com/arjund-dev/agriprofit/internal/catalog"
	"github.com/arjund-dev/agriprofit/internal/predict"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_predict.go: prediction endpoint
//   - handlers_report.go: report rendering endpoint
//   - handlers_catalog.go: crop vocabulary endpoint
//   - handlers_health.go: liveness and readiness endpoints
type Handler struct {
	engine    *predict.Engine
	catalog   *catalog.Catalog
	startTime time.Time
	ready     atomic.Bool
}

// NewHandler creates a new API handler. The engine carries the loaded
// predictors and the crop catalog; both are immutable after startup.
func NewHandler(engine *predict.Engine) *Handler {
	h := &Handler{
		engine:    engine,
		catalog:   engine.Catalog(),
		startTime: time.Now(),
	}
	h.ready.Store(true)
	return h
}

// SetReady updates the readiness state reported by the ready endpoint.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}
