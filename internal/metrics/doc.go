// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

/*
Package metrics provides Prometheus metrics collection and export.

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

Prediction Metrics:
  - predictions_total: Prediction requests (counter)
    Labels: outcome (ok, failure_override, error)
  - prediction_duration_seconds: End-to-end pipeline latency (histogram)
  - model_inference_duration_seconds: Per-model evaluation latency (histogram)
    Labels: model (crop_classifier, yield_regressor, expense_regressor)
  - prediction_suggestions_returned: Alternatives returned per request (histogram)

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Catalog Metrics:
  - catalog_crops: Loaded vocabulary size (gauge)

# Cardinality

Endpoint labels use chi route patterns, not raw URL paths, so cardinality
stays bounded by the route table. Prediction outcomes are limited to the
three predefined constants.

# Thread Safety

All recording functions are safe for concurrent use; the Prometheus client
library handles synchronization internally.
*/
package metrics
