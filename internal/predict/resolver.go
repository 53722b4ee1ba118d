// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

package predict

import "strings"

// ResolveCropName maps a possibly-malformed predicted label onto the
// nearest valid entry of the crop catalog. The catalog must be in its
// canonical sorted order.
//
// Resolution order:
//  1. exact member after lowercase/trim
//  2. first catalog entry containing the label's first three characters
//  3. the catalog's first entry
//
// The substring fallback trades precision for guaranteed non-error output:
// given a non-empty catalog, the result is always a catalog member. With an
// empty catalog the cleaned input is returned unchanged.
func ResolveCropName(raw string, crops []string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if len(crops) == 0 {
		return cleaned
	}

	for _, crop := range crops {
		if crop == cleaned {
			return cleaned
		}
	}

	prefix := cleaned
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for _, crop := range crops {
		if strings.Contains(crop, prefix) {
			return crop
		}
	}

	return crops[0]
}
