package common

import (
	"fmt"
)

// SOLDecimals is the number of decimals of SOL (lamports)
const SOLDecimals = 9

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return formatWithDecimals(lamports, SOLDecimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)

	for len(s) <= decimals {
		s = "0" + s
	}

	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}
