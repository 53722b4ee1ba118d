// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

import (
	"testing"

	"github.com/arjund-dev/agriprofit/internal/catalog"
)

func TestFixedExpense(t *testing.T) {
	costs := CostInputs{Fertilizer: 5, Pesticide: 1, Seed: 200, Other: 50}
	// 5*40 + 1*120 + 200 + 50 = 570
	if got := FixedExpense(costs); !almostEqual(got, 570) {
		t.Errorf("FixedExpense() = %v, want 570", got)
	}
}

func TestSuggestBestCropsRiceScenario(t *testing.T) {
	// market_price=10, base_yield=500, expense=570; rice factor 0.78.
	cat := catalog.New([]string{"rice"})
	costs := CostInputs{Fertilizer: 5, Pesticide: 1, Seed: 200, Other: 50}

	got := SuggestBestCrops(costs, 10, 500, cat)
	if len(got) != 1 {
		t.Fatalf("len(suggestions) = %d, want 1", len(got))
	}
	if got[0].Crop != "rice" {
		t.Errorf("Crop = %q, want rice", got[0].Crop)
	}
	if !almostEqual(got[0].Yield, 390) {
		t.Errorf("Yield = %v, want 390", got[0].Yield)
	}
	if !almostEqual(got[0].Profit, 3330) {
		t.Errorf("Profit = %v, want 3330 (3900 revenue - 570 expense)", got[0].Profit)
	}
}

func TestSuggestBestCropsRankingAndCap(t *testing.T) {
	cat := catalog.New([]string{"rice", "wheat", "maize", "potato", "sugarcane"})

	got := SuggestBestCrops(CostInputs{}, 10, 100, cat)

	if len(got) != maxSuggestions {
		t.Fatalf("len(suggestions) = %d, want %d", len(got), maxSuggestions)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Profit > got[i-1].Profit {
			t.Errorf("suggestions not sorted by profit descending: %v before %v", got[i-1], got[i])
		}
	}
	// Highest factors with zero expense: rice 0.78, then potato 0.76, then wheat 0.74.
	wantOrder := []string{"rice", "potato", "wheat"}
	for i, want := range wantOrder {
		if got[i].Crop != want {
			t.Errorf("suggestions[%d].Crop = %q, want %q", i, got[i].Crop, want)
		}
	}
}

func TestSuggestBestCropsTieBreakByCatalogOrder(t *testing.T) {
	// banana and cauliflower share factor 0.70; banana sorts first in the
	// catalog, so it must come first on equal profit.
	cat := catalog.New([]string{"cauliflower", "banana"})

	got := SuggestBestCrops(CostInputs{}, 10, 100, cat)
	if len(got) != 2 {
		t.Fatalf("len(suggestions) = %d, want 2", len(got))
	}
	if got[0].Crop != "banana" || got[1].Crop != "cauliflower" {
		t.Errorf("tie order = [%s, %s], want [banana, cauliflower]", got[0].Crop, got[1].Crop)
	}
	if !almostEqual(got[0].Profit, got[1].Profit) {
		t.Errorf("expected equal profits, got %v and %v", got[0].Profit, got[1].Profit)
	}
}

func TestSuggestBestCropsFiltersUnprofitable(t *testing.T) {
	cat := catalog.New([]string{"rice", "wheat"})
	// Fixed expense 10000 dwarfs any revenue at price 1, yield 100.
	costs := CostInputs{Seed: 10000}

	got := SuggestBestCrops(costs, 1, 100, cat)
	if len(got) != 0 {
		t.Errorf("len(suggestions) = %d, want 0 when nothing is profitable", len(got))
	}
}

func TestSuggestBestCropsAllProfitable(t *testing.T) {
	cat := catalog.New([]string{"rice", "wheat"})

	got := SuggestBestCrops(CostInputs{}, 10, 100, cat)
	if len(got) != 2 {
		t.Fatalf("len(suggestions) = %d, want 2", len(got))
	}
	for _, s := range got {
		if s.Profit <= 0 {
			t.Errorf("suggestion %q has profit %v, want > 0", s.Crop, s.Profit)
		}
	}
}

func TestSuggestBestCropsDefaultFactor(t *testing.T) {
	cat := catalog.New([]string{"dragonfruit"})

	got := SuggestBestCrops(CostInputs{}, 10, 100, cat)
	if len(got) != 1 {
		t.Fatalf("len(suggestions) = %d, want 1", len(got))
	}
	if !almostEqual(got[0].Yield, 100*catalog.DefaultYieldFactor) {
		t.Errorf("Yield = %v, want default factor applied (%v)", got[0].Yield, 100*catalog.DefaultYieldFactor)
	}
}

func TestSuggestBestCropsEmptyCatalog(t *testing.T) {
	got := SuggestBestCrops(CostInputs{}, 10, 100, catalog.New(nil))
	if len(got) != 0 {
		t.Errorf("empty catalog should yield no suggestions, got %v", got)
	}
}
