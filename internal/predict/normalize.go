// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ToFloat coerces an arbitrary decoded JSON value to float64. Any value
// that cannot be interpreted numerically (missing, nil, non-numeric text)
// yields 0.0. Best-effort over strictness: this never reports an error.
func ToFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0.0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0.0
		}
		return f
	case bool:
		if x {
			return 1.0
		}
		return 0.0
	default:
		return 0.0
	}
}

// Cost field aliases: the short form is preferred; the verbose form is the
// dataset's original column name, accepted for clients that post rows
// straight from the reference CSV.
var costAliases = []struct {
	short   string
	verbose string
}{
	{"fertilizer", "Fertilizer_Usage_kg_per_hectare"},
	{"pesticide", "Pesticide_Usage_litre_per_hectare"},
	{"seed", "Seed_Expense_per_hectare(INR)"},
	{"other", "Other_Expense(INR)"},
}

// NormalizeFeatures builds a FeatureRecord from a raw key-value payload.
// Every field defaults to 0.0 when absent or unparsable.
func NormalizeFeatures(input map[string]any) FeatureRecord {
	return FeatureRecord{
		Nitrogen:    ToFloat(input["N"]),
		Phosphorus:  ToFloat(input["P"]),
		Potassium:   ToFloat(input["K"]),
		Temperature: ToFloat(input["temperature"]),
		Humidity:    ToFloat(input["humidity"]),
		PH:          ToFloat(input["ph"]),
		Rainfall:    ToFloat(input["rainfall"]),
	}
}

// NormalizeCosts builds CostInputs from a raw key-value payload. Each field
// accepts the short or verbose key name; the short name wins when present
// and non-empty, otherwise the verbose name is consulted, otherwise 0.0.
func NormalizeCosts(input map[string]any) CostInputs {
	values := make([]float64, len(costAliases))
	for i, alias := range costAliases {
		values[i] = costValue(input, alias.short, alias.verbose)
	}
	return CostInputs{
		Fertilizer: values[0],
		Pesticide:  values[1],
		Seed:       values[2],
		Other:      values[3],
	}
}

// costValue picks the short key when it holds a usable value, then the
// verbose key, then 0.0.
func costValue(input map[string]any, short, verbose string) float64 {
	if v, ok := input[short]; ok && !emptyValue(v) {
		return ToFloat(v)
	}
	if v, ok := input[verbose]; ok && !emptyValue(v) {
		return ToFloat(v)
	}
	return 0.0
}

// emptyValue reports whether a raw value counts as absent for the purpose
// of alias fallback.
func emptyValue(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
