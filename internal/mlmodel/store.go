// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package mlmodel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/arjund-dev/agriprofit/internal/config"
)

// Store holds the loaded predictors. All four are required; the server
// refuses to start without them.
type Store struct {
	Crop    *Classifier
	Yield   *Regressor
	Expense *Regressor
	Labels  *LabelEncoder
}

// LoadStore reads and validates all model files from the configured
// directory. Any missing or malformed file is an error.
func LoadStore(cfg config.ModelsConfig) (*Store, error) {
	crop, err := loadClassifier(filepath.Join(cfg.Dir, cfg.Classifier))
	if err != nil {
		return nil, fmt.Errorf("crop classifier: %w", err)
	}

	yield, err := loadRegressor(filepath.Join(cfg.Dir, cfg.YieldRegressor))
	if err != nil {
		return nil, fmt.Errorf("yield regressor: %w", err)
	}

	expense, err := loadRegressor(filepath.Join(cfg.Dir, cfg.ExpenseRegressor))
	if err != nil {
		return nil, fmt.Errorf("expense regressor: %w", err)
	}

	labels, err := loadLabelEncoder(filepath.Join(cfg.Dir, cfg.LabelEncoder))
	if err != nil {
		return nil, fmt.Errorf("label encoder: %w", err)
	}

	if crop.forest.NumFeatures != yield.forest.NumFeatures {
		return nil, fmt.Errorf("classifier expects %d features but yield regressor expects %d",
			crop.forest.NumFeatures, yield.forest.NumFeatures)
	}

	return &Store{Crop: crop, Yield: yield, Expense: expense, Labels: labels}, nil
}

func loadClassifier(path string) (*Classifier, error) {
	var c Classifier
	if err := loadJSON(path, &c.forest); err != nil {
		return nil, err
	}
	if err := c.forest.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

func loadRegressor(path string) (*Regressor, error) {
	var r Regressor
	if err := loadJSON(path, &r.forest); err != nil {
		return nil, err
	}
	if err := r.forest.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &r, nil
}

func loadLabelEncoder(path string) (*LabelEncoder, error) {
	var e LabelEncoder
	if err := loadJSON(path, &e); err != nil {
		return nil, err
	}
	if err := e.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &e, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read model file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
