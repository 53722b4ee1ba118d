// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/arjund-dev/agriprofit/internal/logging"
	"github.com/arjund-dev/agriprofit/internal/metrics"
)

// maxPredictBodyBytes bounds the prediction payload. The flat key-value
// body is a few hundred bytes in practice.
const maxPredictBodyBytes = 1 << 16

// Predict handles POST /api/v1/predict.
//
// The body is a flat JSON object of feature and cost values. Unknown keys
// are ignored and missing or unparsable values coerce to zero, so decode
// failures only occur for malformed JSON. The response body is the legacy
// flat result shape, not the standard envelope; its field names are a
// stable contract with existing clients.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var input map[string]any
	body := http.MaxBytesReader(w, r.Body, maxPredictBodyBytes)
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		NewResponseWriter(w, r).BadRequest("Request body must be a JSON object")
		return
	}

	res, err := h.engine.Predict(r.Context(), input)
	if err != nil {
		metrics.RecordPrediction(metrics.OutcomeError, time.Since(start))
		NewResponseWriter(w, r).PredictionError(err)
		return
	}

	outcome := metrics.OutcomeOK
	if res.Failure {
		outcome = metrics.OutcomeFailureOverride
	}
	metrics.RecordPrediction(outcome, time.Since(start))
	metrics.RecordSuggestions(len(res.Suggestions))

	logger := logging.Ctx(r.Context())
	logger.Info().
		Str("crop", res.Crop).
		Bool("failure", res.Failure).
		Int("suggestions", len(res.Suggestions)).
		Dur("duration", time.Since(start)).
		Msg("Prediction served")

	writeLegacyJSON(w, PresentPrediction(res))
}

// writeLegacyJSON writes a bare (non-enveloped) JSON body.
func writeLegacyJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
