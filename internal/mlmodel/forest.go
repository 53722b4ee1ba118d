// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

// Package mlmodel loads and evaluates the serialized prediction models.
//
// Models are random forests exported to a flat-array JSON format: each tree
// is a slice of nodes where internal nodes carry a feature index, a split
// threshold, and left/right child indices, and leaves carry the predicted
// value. Evaluation is a pure array walk with no allocation, so a loaded
// forest is safe for concurrent use.
package mlmodel

import (
	"fmt"
)

// node is a single decision tree node in flat-array form. Leaves have
// Left == -1 and Right == -1.
type node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// tree is one decision tree, nodes indexed from the root at 0.
type tree struct {
	Nodes []node `json:"nodes"`
}

// evaluate walks the tree for the given feature vector and returns the
// reached leaf value.
func (t *tree) evaluate(features []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, fmt.Errorf("tree has no nodes")
	}

	idx := 0
	// Each step descends one level; a well-formed tree terminates within
	// len(Nodes) steps. The bound guards against cyclic child indices in a
	// corrupt file.
	for range t.Nodes {
		n := t.Nodes[idx]
		if n.Left == -1 && n.Right == -1 {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(features) {
			return 0, fmt.Errorf("node references feature %d, have %d features", n.Feature, len(features))
		}
		if features[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("node child index %d out of range", idx)
		}
	}
	return 0, fmt.Errorf("tree walk did not reach a leaf")
}

// Forest is a loaded random forest. NumFeatures pins the expected input
// width so a malformed request vector fails loudly instead of reading a
// wrong feature.
type Forest struct {
	NumFeatures int    `json:"num_features"`
	Trees       []tree `json:"trees"`
}

func (f *Forest) validate() error {
	if f.NumFeatures <= 0 {
		return fmt.Errorf("num_features must be positive, got %d", f.NumFeatures)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("forest has no trees")
	}
	return nil
}

func (f *Forest) checkWidth(features []float64) error {
	if len(features) != f.NumFeatures {
		return fmt.Errorf("expected %d features, got %d", f.NumFeatures, len(features))
	}
	return nil
}

// Regressor predicts a continuous value as the mean of the per-tree leaf
// values.
type Regressor struct {
	forest Forest
}

// Predict evaluates the forest over the features and averages the trees.
func (r *Regressor) Predict(features []float64) (float64, error) {
	if err := r.forest.checkWidth(features); err != nil {
		return 0, err
	}

	sum := 0.0
	for i := range r.forest.Trees {
		v, err := r.forest.Trees[i].evaluate(features)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		sum += v
	}
	return sum / float64(len(r.forest.Trees)), nil
}

// Classifier predicts an encoded class by majority vote across trees. Leaf
// values are encoded class indices; ties break toward the lower class,
// matching the encoder's alphabetical ordering.
type Classifier struct {
	forest Forest
}

// Predict evaluates the forest over the features and returns the winning
// encoded class.
func (c *Classifier) Predict(features []float64) (int, error) {
	if err := c.forest.checkWidth(features); err != nil {
		return 0, err
	}

	votes := make(map[int]int, len(c.forest.Trees))
	for i := range c.forest.Trees {
		v, err := c.forest.Trees[i].evaluate(features)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		class := int(v)
		if class < 0 {
			return 0, fmt.Errorf("tree %d voted negative class %d", i, class)
		}
		votes[class]++
	}

	winner, best := 0, -1
	for class, count := range votes {
		if count > best || (count == best && class < winner) {
			winner, best = class, count
		}
	}
	return winner, nil
}
