// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

import (
	"sort"

	"github.com/arjund-dev/agriprofit/internal/catalog"
)

// Fixed per-unit costs of the suggestion expense model. Suggestions use
// this flat linear model rather than the expense predictor so the ranking
// stays deterministic and explainable.
const (
	fertilizerUnitCost = 40.0
	pesticideUnitCost  = 120.0
)

// maxSuggestions caps the ranked suggestion list.
const maxSuggestions = 3

// FixedExpense computes the suggestion cost model:
// fertilizer*40 + pesticide*120 + seed + other.
func FixedExpense(costs CostInputs) float64 {
	return costs.Fertilizer*fertilizerUnitCost +
		costs.Pesticide*pesticideUnitCost +
		costs.Seed +
		costs.Other
}

// SuggestBestCrops ranks every catalog crop by projected profit under its
// fixed yield factor and the fixed expense model, and returns up to three
// profitable candidates, best first.
//
// Ordering is deterministic: profit descending with a stable sort, ties
// resolved by catalog iteration order. An empty slice is returned when no
// candidate is profitable.
func SuggestBestCrops(costs CostInputs, marketPrice, baseYield float64, cat *catalog.Catalog) []SuggestionEntry {
	fixedExpense := FixedExpense(costs)

	candidates := make([]SuggestionEntry, 0, cat.Len())
	for _, crop := range cat.Crops() {
		approxYield := baseYield * cat.Factor(crop)
		revenue := approxYield * marketPrice
		candidates = append(candidates, SuggestionEntry{
			Crop:   crop,
			Yield:  approxYield,
			Profit: revenue - fixedExpense,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Profit > candidates[j].Profit
	})

	profitable := candidates[:0]
	for _, c := range candidates {
		if c.Profit > 0 {
			profitable = append(profitable, c)
		}
	}

	if len(profitable) > maxSuggestions {
		profitable = profitable[:maxSuggestions]
	}
	return profitable
}
