// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

// Package predict implements the deterministic post-processing and
// recommendation engine that sits between raw model output and the
// user-facing numbers.
//
// The pipeline is one-way:
//
//	raw input -> normalization -> {predictors, failure detection}
//	          -> yield/expense correction -> crop name resolution
//	          -> suggestion ranking -> result
//
// All policy in this package is pure and fixed at compile time: the
// extremity thresholds, correction factors, and the suggestion cost model
// are design constants, intentionally transparent and auditable rather
// than statistically fit. The three model predictors are injected as
// interfaces; the Engine holds only read-only state and is safe for
// concurrent use.
package predict
