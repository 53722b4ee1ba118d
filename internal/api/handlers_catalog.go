// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package api

import (
	"net/http"
)

// CatalogEntry is one crop in the vocabulary with its ranking factor.
type CatalogEntry struct {
	Crop   string  `json:"crop"`
	Factor float64 `json:"factor"`
}

// CatalogResponse is the payload for the catalog endpoint.
type CatalogResponse struct {
	Crops []CatalogEntry `json:"crops"`
	Count int            `json:"count"`
}

// Catalog handles GET /api/v1/catalog. An empty vocabulary returns an
// empty list, not an error.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	crops := h.catalog.Crops()

	entries := make([]CatalogEntry, 0, len(crops))
	for _, crop := range crops {
		entries = append(entries, CatalogEntry{
			Crop:   crop,
			Factor: h.catalog.Factor(crop),
		})
	}

	NewResponseWriter(w, r).Success(CatalogResponse{
		Crops: entries,
		Count: len(entries),
	})
}
