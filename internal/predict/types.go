// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

// FeatureRecord holds the seven environmental features consumed by the crop
// classifier and yield regressor. Immutable once constructed per request.
type FeatureRecord struct {
	// Nitrogen is the soil nitrogen content (N).
	Nitrogen float64 `json:"N"`

	// Phosphorus is the soil phosphorus content (P).
	Phosphorus float64 `json:"P"`

	// Potassium is the soil potassium content (K).
	Potassium float64 `json:"K"`

	// Temperature in degrees Celsius.
	Temperature float64 `json:"temperature"`

	// Humidity as relative percentage.
	Humidity float64 `json:"humidity"`

	// PH is the soil pH value.
	PH float64 `json:"ph"`

	// Rainfall in millimeters.
	Rainfall float64 `json:"rainfall"`
}

// Vector returns the features in the order the models were trained on.
func (f FeatureRecord) Vector() []float64 {
	return []float64{
		f.Nitrogen,
		f.Phosphorus,
		f.Potassium,
		f.Temperature,
		f.Humidity,
		f.PH,
		f.Rainfall,
	}
}

// CostInputs holds the four cost features consumed by the expense regressor
// and the suggestion ranker's fixed cost model.
type CostInputs struct {
	// Fertilizer usage in kg per hectare.
	Fertilizer float64 `json:"fertilizer"`

	// Pesticide usage in litres per hectare.
	Pesticide float64 `json:"pesticide"`

	// Seed expense per hectare.
	Seed float64 `json:"seed"`

	// Other expenses.
	Other float64 `json:"other"`
}

// Vector returns the cost features in the order the expense model was
// trained on: fertilizer, pesticide, seed, other.
func (c CostInputs) Vector() []float64 {
	return []float64{c.Fertilizer, c.Pesticide, c.Seed, c.Other}
}

// SuggestionEntry is an alternative crop candidate with a deterministic
// (non-model) yield and profit estimate. Computed fresh per request, never
// persisted.
type SuggestionEntry struct {
	// Crop is the catalog crop name.
	Crop string `json:"crop"`

	// Yield is the approximate yield under the crop's fixed factor.
	Yield float64 `json:"yield"`

	// Profit is revenue under the fixed cost model, minus fixed expense.
	Profit float64 `json:"profit"`
}

// Result is the end-to-end prediction outcome for a single request.
type Result struct {
	// Crop is the final predicted crop, possibly CropFailureLabel.
	Crop string `json:"crop"`

	// Yield is the corrected yield prediction in Kg/ha. Forced to the
	// failure sentinel when failure conditions are detected.
	Yield float64 `json:"yield"`

	// Expense is the corrected expense prediction.
	Expense float64 `json:"expense"`

	// Revenue is yield times market price.
	Revenue float64 `json:"revenue"`

	// Profit is max(revenue-expense, 0).
	Profit float64 `json:"profit"`

	// Loss is max(expense-revenue, 0).
	Loss float64 `json:"loss"`

	// Failure reports whether the failure override was applied.
	Failure bool `json:"failure"`

	// Suggestions holds up to three profitable alternatives, ranked by
	// profit descending. Empty when the primary prediction is a loss.
	Suggestions []SuggestionEntry `json:"suggestions"`
}

// ShowSuggestions reports whether alternative crops should be surfaced.
// Alternatives are never suggested when the main recommendation is already
// a loss.
func (r *Result) ShowSuggestions() bool {
	return r.Profit > 0
}

// CropFailureLabel is the sentinel crop name reported when environmental
// conditions imply total crop failure.
const CropFailureLabel = "Crop Failure"

// Classifier predicts an encoded class label from a feature vector.
type Classifier interface {
	Predict(features []float64) (int, error)
}

// Regressor predicts a continuous value from a feature vector.
type Regressor interface {
	Predict(features []float64) (float64, error)
}

// LabelDecoder maps an encoded class label back to its string form.
type LabelDecoder interface {
	Decode(class int) (string, error)
}

// Predictors bundles the opaque model collaborators the engine composes.
// All four must be non-nil.
type Predictors struct {
	// Crop classifies the 7-feature record into an encoded crop label.
	Crop Classifier

	// Yield regresses the same 7 features to a raw yield estimate.
	Yield Regressor

	// Expense regresses the 4 cost features to a raw expense estimate.
	Expense Regressor

	// Labels decodes the classifier's encoded label to a crop name.
	Labels LabelDecoder
}
