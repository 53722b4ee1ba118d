// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

import (
	"encoding/json"
	"testing"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"float64", 42.5, 42.5},
		{"int", 7, 7.0},
		{"numeric string", "3.14", 3.14},
		{"padded numeric string", " 12 ", 12.0},
		{"json number", json.Number("99.5"), 99.5},
		{"bad json number", json.Number("abc"), 0.0},
		{"non-numeric string", "hello", 0.0},
		{"empty string", "", 0.0},
		{"nil", nil, 0.0},
		{"bool true", true, 1.0},
		{"bool false", false, 0.0},
		{"map", map[string]any{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToFloat(tt.input); got != tt.want {
				t.Errorf("ToFloat(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeFeatures(t *testing.T) {
	input := map[string]any{
		"N":           "80",
		"P":           50.0,
		"K":           45,
		"temperature": 27.5,
		"humidity":    nil,
		"ph":          "not-a-number",
		// rainfall absent
	}

	got := NormalizeFeatures(input)
	want := FeatureRecord{
		Nitrogen:    80,
		Phosphorus:  50,
		Potassium:   45,
		Temperature: 27.5,
		Humidity:    0,
		PH:          0,
		Rainfall:    0,
	}

	if got != want {
		t.Errorf("NormalizeFeatures() = %+v, want %+v", got, want)
	}
}

func TestNormalizeCostsAliases(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  CostInputs
	}{
		{
			name: "short keys preferred",
			input: map[string]any{
				"fertilizer":                      5.0,
				"Fertilizer_Usage_kg_per_hectare": 99.0,
				"pesticide":                       1.0,
				"seed":                            200.0,
				"other":                           50.0,
			},
			want: CostInputs{Fertilizer: 5, Pesticide: 1, Seed: 200, Other: 50},
		},
		{
			name: "verbose fallback",
			input: map[string]any{
				"Fertilizer_Usage_kg_per_hectare":   5.0,
				"Pesticide_Usage_litre_per_hectare": 1.0,
				"Seed_Expense_per_hectare(INR)":     200.0,
				"Other_Expense(INR)":                50.0,
			},
			want: CostInputs{Fertilizer: 5, Pesticide: 1, Seed: 200, Other: 50},
		},
		{
			name: "empty short falls back to verbose",
			input: map[string]any{
				"fertilizer":                      "",
				"Fertilizer_Usage_kg_per_hectare": 7.0,
			},
			want: CostInputs{Fertilizer: 7},
		},
		{
			name: "nil short falls back to verbose",
			input: map[string]any{
				"seed":                          nil,
				"Seed_Expense_per_hectare(INR)": 150.0,
			},
			want: CostInputs{Seed: 150},
		},
		{
			name:  "all absent defaults to zero",
			input: map[string]any{},
			want:  CostInputs{},
		},
		{
			name: "unparsable values default to zero",
			input: map[string]any{
				"fertilizer": "lots",
				"pesticide":  []string{"x"},
			},
			want: CostInputs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCosts(tt.input); got != tt.want {
				t.Errorf("NormalizeCosts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVectorOrder(t *testing.T) {
	f := FeatureRecord{Nitrogen: 1, Phosphorus: 2, Potassium: 3, Temperature: 4, Humidity: 5, PH: 6, Rainfall: 7}
	want := []float64{1, 2, 3, 4, 5, 6, 7}
	got := f.Vector()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FeatureRecord.Vector() = %v, want %v", got, want)
		}
	}

	c := CostInputs{Fertilizer: 1, Pesticide: 2, Seed: 3, Other: 4}
	wantC := []float64{1, 2, 3, 4}
	gotC := c.Vector()
	for i := range wantC {
		if gotC[i] != wantC[i] {
			t.Fatalf("CostInputs.Vector() = %v, want %v", gotC, wantC)
		}
	}
}
