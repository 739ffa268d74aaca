// Package money formats integer cent amounts for display.
package money

import "fmt"

// Format renders an amount of cents as a dollar string, e.g. 1300 -> "$13.00".
// Negative amounts keep the sign in front of the currency symbol.
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
