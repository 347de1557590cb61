// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "fmt"

// FormatRevenue renders a revenue amount with a B, M or K suffix and two
// decimals, choosing the largest unit the amount reaches.
func FormatRevenue(amount float64) string {
	switch {
	case amount >= 1e9:
		return fmt.Sprintf("$%.2fB", amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("$%.2fM", amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("$%.2fK", amount/1e3)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}
