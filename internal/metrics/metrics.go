// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction outcome label values.
const (
	OutcomeOK              = "ok"
	OutcomeFailureOverride = "failure_override"
	OutcomeError           = "error"
)

var (
	// Prediction Pipeline Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of prediction requests by outcome",
		},
		[]string{"outcome"}, // "ok", "failure_override", "error"
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prediction_duration_seconds",
			Help:    "End-to-end prediction pipeline duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	ModelInferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_inference_duration_seconds",
			Help:    "Per-model inference duration in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
		[]string{"model"}, // "crop_classifier", "yield_regressor", "expense_regressor"
	)

	SuggestionsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prediction_suggestions_returned",
			Help:    "Number of alternative crops returned per prediction",
			Buckets: []float64{0, 1, 2, 3},
		},
	)

	// API Endpoint Metrics
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
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Metrics
	CatalogCrops = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_crops",
			Help: "Number of crops in the loaded vocabulary",
		},
	)
)

// RecordPrediction records a completed prediction pipeline run.
func RecordPrediction(outcome string, duration time.Duration) {
	PredictionsTotal.WithLabelValues(outcome).Inc()
	PredictionDuration.Observe(duration.Seconds())
}

// RecordModelInference records a single model evaluation.
func RecordModelInference(model string, duration time.Duration) {
	ModelInferenceDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordSuggestions records how many alternatives a prediction returned.
func RecordSuggestions(count int) {
	SuggestionsReturned.Observe(float64(count))
}

// RecordAPIRequest records request counts and latency for an endpoint.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetCatalogSize records the loaded vocabulary size.
func SetCatalogSize(n int) {
	CatalogCrops.Set(float64(n))
}
