// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package mlmodel

import (
	"math"
	"testing"
)

// stumpTree builds a one-split tree: feature 0 <= threshold goes left.
func stumpTree(threshold, leftValue, rightValue float64) tree {
	return tree{Nodes: []node{
		{Feature: 0, Threshold: threshold, Left: 1, Right: 2},
		{Left: -1, Right: -1, Value: leftValue},
		{Left: -1, Right: -1, Value: rightValue},
	}}
}

func leafTree(value float64) tree {
	return tree{Nodes: []node{{Left: -1, Right: -1, Value: value}}}
}

func TestTreeEvaluate(t *testing.T) {
	tr := stumpTree(5.0, 10, 20)

	tests := []struct {
		name     string
		features []float64
		want     float64
	}{
		{"below threshold", []float64{3}, 10},
		{"at threshold goes left", []float64{5}, 10},
		{"above threshold", []float64{7}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.evaluate(tt.features)
			if err != nil {
				t.Fatalf("evaluate(%v) error = %v", tt.features, err)
			}
			if got != tt.want {
				t.Errorf("evaluate(%v) = %v, want %v", tt.features, got, tt.want)
			}
		})
	}
}

func TestTreeEvaluateMalformed(t *testing.T) {
	tests := []struct {
		name string
		tr   tree
	}{
		{"empty tree", tree{}},
		{"feature out of range", tree{Nodes: []node{
			{Feature: 9, Threshold: 1, Left: 1, Right: 1},
			{Left: -1, Right: -1},
		}}},
		{"child out of range", tree{Nodes: []node{
			{Feature: 0, Threshold: 1, Left: 5, Right: 5},
		}}},
		{"cyclic children", tree{Nodes: []node{
			{Feature: 0, Threshold: 1, Left: 0, Right: 0},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.tr.evaluate([]float64{1}); err == nil {
				t.Error("evaluate() error = nil, want error")
			}
		})
	}
}

func TestRegressorPredictAveragesTrees(t *testing.T) {
	r := Regressor{forest: Forest{
		NumFeatures: 1,
		Trees:       []tree{leafTree(100), leafTree(200), leafTree(600)},
	}}

	got, err := r.Predict([]float64{0})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if math.Abs(got-300) > 1e-9 {
		t.Errorf("Predict() = %v, want 300", got)
	}
}

func TestRegressorPredictRejectsWrongWidth(t *testing.T) {
	r := Regressor{forest: Forest{NumFeatures: 7, Trees: []tree{leafTree(1)}}}

	if _, err := r.Predict([]float64{1, 2, 3}); err == nil {
		t.Error("Predict() with 3 features against 7-wide forest should fail")
	}
}

func TestClassifierPredictMajorityVote(t *testing.T) {
	c := Classifier{forest: Forest{
		NumFeatures: 1,
		Trees:       []tree{leafTree(2), leafTree(0), leafTree(2)},
	}}

	got, err := c.Predict([]float64{0})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got != 2 {
		t.Errorf("Predict() = %d, want majority class 2", got)
	}
}

func TestClassifierPredictTieBreaksLow(t *testing.T) {
	c := Classifier{forest: Forest{
		NumFeatures: 1,
		Trees:       []tree{leafTree(3), leafTree(1), leafTree(3), leafTree(1)},
	}}

	got, err := c.Predict([]float64{0})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Predict() = %d, want lower class 1 on tie", got)
	}
}

func TestClassifierPredictRejectsNegativeClass(t *testing.T) {
	c := Classifier{forest: Forest{NumFeatures: 1, Trees: []tree{leafTree(-1)}}}

	if _, err := c.Predict([]float64{0}); err == nil {
		t.Error("Predict() with negative leaf class should fail")
	}
}
