// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK whenever the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK only once the models are loaded and the engine can
// serve predictions; 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.ready.Load()

	data := map[string]interface{}{
		"models_loaded":  ready,
		"catalog_crops":  h.catalog.Len(),
		"ready_to_serve": ready,
		"uptime":         time.Since(h.startTime).Seconds(),
	}

	rw := NewResponseWriter(w, r)
	if !ready {
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Models are not loaded")
		return
	}
	rw.Success(data)
}
