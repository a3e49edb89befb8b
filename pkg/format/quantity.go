// Package format renders engineering quantities with thousands separators.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is shown in place of an absent value.
const NotAvailable = "n/a"

var printer = message.NewPrinter(language.English)

// Number formats value with the given number of decimals and English digit
// grouping, e.g. Number(404040.4, 0) == "404,040".
func Number(value float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}

// Optional formats value or returns NotAvailable when it is nil.
func Optional(value *float64, decimals int) string {
	if value == nil {
		return NotAvailable
	}
	return Number(*value, decimals)
}

// Plain formats value without grouping, for machine readable output.
func Plain(value float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, value)
}
