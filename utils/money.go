package utils

import "fmt"

// FormatUSD renders an amount in integer cents for display. Whole-dollar
// amounts drop the decimal part ("$60"), fractional amounts keep two
// places ("$60.50").
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	if cents%100 == 0 {
		return fmt.Sprintf("%s$%d", sign, cents/100)
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
