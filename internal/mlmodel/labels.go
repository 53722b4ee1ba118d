// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package mlmodel

import (
	"fmt"
)

// LabelEncoder maps encoded class indices back to crop names. The classes
// slice is the exporter's fitted vocabulary in index order.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// Decode returns the crop name for an encoded class.
func (e *LabelEncoder) Decode(class int) (string, error) {
	if class < 0 || class >= len(e.Classes) {
		return "", fmt.Errorf("class %d outside encoder range [0, %d)", class, len(e.Classes))
	}
	return e.Classes[class], nil
}

func (e *LabelEncoder) validate() error {
	if len(e.Classes) == 0 {
		return fmt.Errorf("label encoder has no classes")
	}
	for i, c := range e.Classes {
		if c == "" {
			return fmt.Errorf("label encoder class %d is empty", i)
		}
	}
	return nil
}
