// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjund-dev/agriprofit/internal/catalog"
	"github.com/arjund-dev/agriprofit/internal/metrics"
)

// Engine composes the predictors, catalog, and deterministic policy into
// the end-to-end prediction pipeline. All state is read-only after
// construction; Engine is safe for concurrent use and processes each
// request synchronously with no intra-request concurrency.
type Engine struct {
	predictors Predictors
	catalog    *catalog.Catalog
	logger     zerolog.Logger
}

// NewEngine creates a prediction engine. All predictors must be provided;
// the catalog may be empty, in which case name resolution and suggestions
// degrade to their fallback behavior.
func NewEngine(p Predictors, cat *catalog.Catalog, logger zerolog.Logger) (*Engine, error) {
	if p.Crop == nil || p.Yield == nil || p.Expense == nil || p.Labels == nil {
		return nil, errors.New("all predictors must be provided")
	}
	if cat == nil {
		cat = catalog.New(nil)
	}

	return &Engine{
		predictors: p,
		catalog:    cat,
		logger:     logger.With().Str("component", "predict").Logger(),
	}, nil
}

// Catalog returns the engine's crop catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Predict runs the full pipeline over a raw key-value payload: normalize,
// classify, detect failure, correct yield and expense, compute economics,
// and rank alternatives.
//
// Numeric coercion never fails (absent fields read as 0.0). Any predictor
// error aborts the request with no partial result; the HTTP boundary turns
// it into a generic failure response.
func (e *Engine) Predict(ctx context.Context, input map[string]any) (result *Result, err error) {
	// Predictors are opaque; a panic inside one is an inference failure,
	// not a process fault.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("inference panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	features := NormalizeFeatures(input)
	costs := NormalizeCosts(input)
	price := ToFloat(input["market_price"])

	start := time.Now()
	encoded, err := e.predictors.Crop.Predict(features.Vector())
	metrics.RecordModelInference("crop_classifier", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("crop classification failed: %w", err)
	}
	rawLabel, err := e.predictors.Labels.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("label decoding failed: %w", err)
	}

	failed := DetectFailure(features)

	var crop string
	if failed {
		crop = CropFailureLabel
		e.logger.Debug().
			Strs("conditions", TriggeredConditions(features)).
			Msg("Failure override active")
	} else {
		crop = ResolveCropName(strings.ToLower(rawLabel), e.catalog.Crops())
	}

	start = time.Now()
	rawYield, err := e.predictors.Yield.Predict(features.Vector())
	metrics.RecordModelInference("yield_regressor", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("yield regression failed: %w", err)
	}
	yield := FailureYieldSentinel
	if !failed {
		yield = CorrectYield(rawYield, features)
	}

	start = time.Now()
	rawExpense, err := e.predictors.Expense.Predict(costs.Vector())
	metrics.RecordModelInference("expense_regressor", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("expense regression failed: %w", err)
	}
	expense := CorrectExpense(rawExpense, features)

	revenue := yield * price
	profit := math.Max(revenue-expense, 0)
	loss := math.Max(expense-revenue, 0)

	suggestions := []SuggestionEntry{}
	if profit > 0 {
		suggestions = SuggestBestCrops(costs, price, yield, e.catalog)
	}

	e.logger.Debug().
		Str("crop", crop).
		Bool("failure", failed).
		Float64("yield", yield).
		Float64("expense", expense).
		Float64("profit", profit).
		Int("suggestions", len(suggestions)).
		Msg("Prediction computed")

	return &Result{
		Crop:        crop,
		Yield:       yield,
		Expense:     expense,
		Revenue:     revenue,
		Profit:      profit,
		Loss:        loss,
		Failure:     failed,
		Suggestions: suggestions,
	}, nil
}
