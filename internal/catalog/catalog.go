// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

// Package catalog holds the known-crop vocabulary and the fixed per-crop
// economics factors used by the suggestion ranker.
//
// The vocabulary is the sorted set of distinct crop labels in the reference
// dataset, loaded once at startup and read-only thereafter. A missing
// dataset degrades resolution and suggestions to fallback behavior instead
// of failing.
package catalog

import (
	"sort"
	"strings"
)

// DefaultYieldFactor applies to catalog crops without an explicit entry in
// the factor table.
const DefaultYieldFactor = 0.75

// cropFactors is the fixed yield factor per crop, a fraction in (0, 1].
// These never change at runtime; they are design constants of the
// comparative ranking model, not fitted values.
var cropFactors = map[string]float64{
	"rice":        0.78,
	"wheat":       0.74,
	"maize":       0.72,
	"banana":      0.70,
	"barley":      0.69,
	"blackgram":   0.68,
	"brinjal":     0.71,
	"sesame":      0.67,
	"chickpea":    0.73,
	"onion":       0.66,
	"chilli":      0.65,
	"cauliflower": 0.70,
	"pigeonpeas":  0.74,
	"potato":      0.76,
	"sorghum":     0.69,
	"sugarcane":   0.64,
}

// Catalog is the read-only crop vocabulary. Safe for unsynchronized
// concurrent reads; never mutated after construction.
type Catalog struct {
	crops []string
}

// New builds a Catalog from raw labels: lowercased, trimmed, deduplicated,
// sorted. Empty labels are dropped.
func New(labels []string) *Catalog {
	seen := make(map[string]struct{}, len(labels))
	crops := make([]string, 0, len(labels))
	for _, label := range labels {
		cleaned := strings.ToLower(strings.TrimSpace(label))
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		crops = append(crops, cleaned)
	}
	sort.Strings(crops)

	return &Catalog{crops: crops}
}

// Crops returns the vocabulary in canonical sorted order. Callers must not
// mutate the returned slice.
func (c *Catalog) Crops() []string {
	return c.crops
}

// Len returns the vocabulary size.
func (c *Catalog) Len() int {
	return len(c.crops)
}

// IsEmpty reports whether the vocabulary is empty.
func (c *Catalog) IsEmpty() bool {
	return len(c.crops) == 0
}

// Contains reports whether the given canonical name is a catalog member.
func (c *Catalog) Contains(name string) bool {
	for _, crop := range c.crops {
		if crop == name {
			return true
		}
	}
	return false
}

// Factor returns the fixed yield factor for a crop, or DefaultYieldFactor
// when the crop has no explicit entry.
func (c *Catalog) Factor(crop string) float64 {
	if f, ok := cropFactors[crop]; ok {
		return f
	}
	return DefaultYieldFactor
}
