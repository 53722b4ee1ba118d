// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

// FailureYieldSentinel is the yield reported when the failure override is
// active: semantically "negligible", not zero, so downstream arithmetic
// stays finite.
const FailureYieldSentinel = 1.0

// correctionRule pairs a stress predicate with its multiplicative factor.
type correctionRule struct {
	applies func(FeatureRecord) bool
	factor  float64
}

// correctionBand is a group of rules where only the first matching rule
// applies. A single-rule band is an unconditional independent check.
type correctionBand []correctionRule

// yieldCorrections encodes the yield penalty policy. Bands compound with
// each other; within a band only the strictest matching rule fires.
// All factors are in (0, 1], so corrected yield never exceeds the raw
// prediction.
var yieldCorrections = []correctionBand{
	{
		{func(f FeatureRecord) bool { return f.Temperature > 45 }, 0.30},
		{func(f FeatureRecord) bool { return f.Temperature > 38 }, 0.55},
	},
	{
		{func(f FeatureRecord) bool { return f.Rainfall < 20 }, 0.40},
		{func(f FeatureRecord) bool { return f.Rainfall < 40 }, 0.65},
	},
	{
		{func(f FeatureRecord) bool { return f.PH < 5 || f.PH > 8 }, 0.50},
	},
	{
		{func(f FeatureRecord) bool { return f.Nitrogen < 40 }, 0.60},
	},
	{
		{func(f FeatureRecord) bool { return f.Phosphorus < 30 }, 0.70},
	},
	{
		{func(f FeatureRecord) bool { return f.Potassium < 30 }, 0.60},
	},
	{
		{func(f FeatureRecord) bool { return f.Humidity > 85 }, 0.80},
	},
}

// expenseCorrections encodes the expense surcharge policy. All factors are
// >= 1, so corrected expense never drops below the raw prediction.
var expenseCorrections = []correctionBand{
	{
		{func(f FeatureRecord) bool { return f.Temperature > 40 }, 1.20},
	},
	{
		{func(f FeatureRecord) bool { return f.Rainfall < 20 }, 1.30},
	},
	{
		{func(f FeatureRecord) bool { return f.Humidity > 90 }, 1.15},
	},
}

// multiplier compounds the matching factors across all bands.
func multiplier(bands []correctionBand, f FeatureRecord) float64 {
	corr := 1.0
	for _, band := range bands {
		for _, rule := range band {
			if rule.applies(f) {
				corr *= rule.factor
				break
			}
		}
	}
	return corr
}

// YieldMultiplier returns the compounded yield correction factor for the
// given conditions.
func YieldMultiplier(f FeatureRecord) float64 {
	return multiplier(yieldCorrections, f)
}

// CorrectYield applies the yield penalty chain to a raw model prediction.
func CorrectYield(rawYield float64, f FeatureRecord) float64 {
	return rawYield * YieldMultiplier(f)
}

// ExpenseMultiplier returns the compounded expense correction factor for
// the given conditions.
func ExpenseMultiplier(f FeatureRecord) float64 {
	return multiplier(expenseCorrections, f)
}

// CorrectExpense applies the expense surcharge chain to a raw model
// prediction. Applied regardless of failure status.
func CorrectExpense(rawExpense float64, f FeatureRecord) float64 {
	return rawExpense * ExpenseMultiplier(f)
}
