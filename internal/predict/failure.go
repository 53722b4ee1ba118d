// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

// Environmental extremity thresholds. A single extreme reading is tolerated
// (the models already encode some robustness); two or more simultaneous
// extremes are an unmodelable failure mode that overrides model output.
const (
	failureTempAbove      = 45.0
	failureRainBelow      = 20.0
	failurePHBelow        = 5.0
	failureNitrogenBelow  = 20.0
	failurePhosphorBelow  = 15.0
	failurePotassiumBelow = 15.0

	// failureExtremityThreshold is the minimum number of simultaneously
	// triggered conditions that constitutes a failure.
	failureExtremityThreshold = 2
)

// extremityCondition is one independent environmental stress check.
type extremityCondition struct {
	name      string
	triggered func(FeatureRecord) bool
}

// extremityConditions are evaluated unconditionally; each triggered
// condition increments the extremity counter by one.
var extremityConditions = []extremityCondition{
	{"high temperature", func(f FeatureRecord) bool { return f.Temperature > failureTempAbove }},
	{"low rainfall", func(f FeatureRecord) bool { return f.Rainfall < failureRainBelow }},
	{"acidic soil", func(f FeatureRecord) bool { return f.PH < failurePHBelow }},
	{"low nitrogen", func(f FeatureRecord) bool { return f.Nitrogen < failureNitrogenBelow }},
	{"low phosphorus", func(f FeatureRecord) bool { return f.Phosphorus < failurePhosphorBelow }},
	{"low potassium", func(f FeatureRecord) bool { return f.Potassium < failurePotassiumBelow }},
}

// TriggeredConditions returns the names of the triggered stress conditions,
// in evaluation order.
func TriggeredConditions(f FeatureRecord) []string {
	var names []string
	for _, cond := range extremityConditions {
		if cond.triggered(f) {
			names = append(names, cond.name)
		}
	}
	return names
}

// ExtremityCount returns the number of triggered stress conditions.
func ExtremityCount(f FeatureRecord) int {
	count := 0
	for _, cond := range extremityConditions {
		if cond.triggered(f) {
			count++
		}
	}
	return count
}

// DetectFailure reports whether conditions imply total crop failure. Pure
// and side-effect free; thresholds are fixed design constants.
func DetectFailure(f FeatureRecord) bool {
	return ExtremityCount(f) >= failureExtremityThreshold
}
