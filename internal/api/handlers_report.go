// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/arjund-dev/agriprofit/internal/logging"
)

// Report handles POST /api/v1/report.
//
// Clients post back a previously returned prediction result and receive a
// plain-text report as a download. Rendering works off the stable result
// field names only, so a result from any client version can be replayed.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	var res PredictionResponse
	body := http.MaxBytesReader(w, r.Body, maxPredictBodyBytes)
	if err := json.NewDecoder(body).Decode(&res); err != nil {
		NewResponseWriter(w, r).BadRequest("Request body must be a prediction result")
		return
	}
	if res.PredictedCrop == "" {
		NewResponseWriter(w, r).BadRequest("Prediction result is missing Predicted_Crop")
		return
	}

	report := renderReport(&res)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="AgriProfit_Report.txt"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(report)); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("Failed to write report")
	}
}

// renderReport lays out the result as a human-readable text document.
func renderReport(res *PredictionResponse) string {
	var b strings.Builder

	b.WriteString("AgriProfit Report\n")
	b.WriteString("=================\n\n")

	fmt.Fprintf(&b, "Predicted Crop:    %s\n", res.PredictedCrop)
	fmt.Fprintf(&b, "Predicted Yield:   %s\n", res.PredictedYield)
	fmt.Fprintf(&b, "Total Expense:     %s\n", res.TotalExpense)
	fmt.Fprintf(&b, "Predicted Revenue: %s\n", res.PredictedRevenue)
	fmt.Fprintf(&b, "Profit:            %s\n", res.Profit)
	fmt.Fprintf(&b, "Loss:              %s\n", res.Loss)

	if len(res.BestCrops) > 0 {
		b.WriteString("\nTop Recommended Crops:\n")
		for i, c := range res.BestCrops {
			fmt.Fprintf(&b, "%d. %s | Yield: %s | Profit: %s\n", i+1, c.Crop, c.Yield, c.Profit)
		}
	}

	return b.String()
}
