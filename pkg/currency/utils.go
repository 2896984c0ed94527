package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is rendered in place of any value that is missing or not numeric.
const NotAvailable = "N/A"

// smallValueCutoff separates sub-cent prices, which need more precision, from the rest.
const smallValueCutoff = 0.01

type CurrencyUtils struct {
	printer *message.Printer
}

func NewCurrencyUtils() *CurrencyUtils {
	return &CurrencyUtils{
		printer: message.NewPrinter(language.English),
	}
}

// ParseNumber parses a raw upstream value. Empty, non-numeric and non-finite
// inputs report false.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// FormatUSD renders a raw number as dollars: up to 8 decimals below one cent,
// otherwise comma-grouped with up to 4 decimals.
func (u *CurrencyUtils) FormatUSD(raw string) string {
	value, ok := ParseNumber(raw)
	if !ok {
		return NotAvailable
	}
	return u.FormatUSDValue(value)
}

func (u *CurrencyUtils) FormatUSDValue(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NotAvailable
	}
	if value < smallValueCutoff {
		return "$" + trimFraction(fmt.Sprintf("%.8f", value))
	}
	return "$" + trimFraction(u.printer.Sprintf("%.4f", value))
}

// FormatSupply renders a raw number as a comma-grouped integer.
func (u *CurrencyUtils) FormatSupply(raw string) string {
	value, ok := ParseNumber(raw)
	if !ok {
		return NotAvailable
	}
	return u.printer.Sprintf("%.0f", value)
}

// FormatRatio rounds to two places and always keeps a fractional digit.
func (u *CurrencyUtils) FormatRatio(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NotAvailable
	}
	s := decimal.NewFromFloat(value).Round(2).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
