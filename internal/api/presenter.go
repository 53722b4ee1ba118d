// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package api

import (
	"fmt"

	"github.com/arjund-dev/agriprofit/internal/predict"
)

// PredictionResponse is the wire form of a prediction result. Field names
// and the 2-decimal fixed-unit formatting are a stable contract with
// existing clients and the report renderer; do not rename.
type PredictionResponse struct {
	PredictedCrop    string     `json:"Predicted_Crop"`
	PredictedYield   string     `json:"Predicted_Yield"`
	TotalExpense     string     `json:"Total_Expense"`
	PredictedRevenue string     `json:"Predicted_Revenue"`
	Profit           string     `json:"Profit"`
	Loss             string     `json:"Loss"`
	BestCrops        []BestCrop `json:"Best_Crops"`
	ShowSuggestions  bool       `json:"show_suggestions"`
}

// BestCrop is one ranked alternative in the response.
type BestCrop struct {
	Crop   string `json:"Crop"`
	Yield  string `json:"Yield"`
	Profit string `json:"Profit"`
}

// PresentPrediction formats a pipeline result for the wire.
func PresentPrediction(res *predict.Result) PredictionResponse {
	best := make([]BestCrop, 0, len(res.Suggestions))
	for _, s := range res.Suggestions {
		best = append(best, BestCrop{
			Crop:   s.Crop,
			Yield:  fmt.Sprintf("%.2f Kg/ha", s.Yield),
			Profit: fmt.Sprintf("%.2f", s.Profit),
		})
	}

	return PredictionResponse{
		PredictedCrop:    res.Crop,
		PredictedYield:   fmt.Sprintf("%.2f Kg/ha", res.Yield),
		TotalExpense:     fmt.Sprintf("%.2f", res.Expense),
		PredictedRevenue: fmt.Sprintf("%.2f", res.Revenue),
		Profit:           fmt.Sprintf("%.2f", res.Profit),
		Loss:             fmt.Sprintf("%.2f", res.Loss),
		BestCrops:        best,
		ShowSuggestions:  res.ShowSuggestions(),
	}
}
