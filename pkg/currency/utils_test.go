package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	u := NewCurrencyUtils()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"sub-cent trims trailing zeros", "0.000123400", "$0.0001234"},
		{"sub-cent keeps eight places", "0.00000001", "$0.00000001"},
		{"sub-cent rounds past eight places", "0.000000004", "$0"},
		{"zero", "0", "$0"},
		{"cent boundary uses large format", "0.01", "$0.01"},
		{"large value grouped", "1234.50000", "$1,234.5"},
		{"large value rounded to four places", "98765.432198", "$98,765.4322"},
		{"whole number drops point", "1000000", "$1,000,000"},
		{"negative uses small format", "-5", "$-5"},
		{"empty", "", NotAvailable},
		{"whitespace", "  ", NotAvailable},
		{"not a number", "abc", NotAvailable},
		{"nan", "NaN", NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.FormatUSD(tt.raw))
		})
	}
}

func TestFormatUSDValue_NonFinite(t *testing.T) {
	u := NewCurrencyUtils()
	assert.Equal(t, NotAvailable, u.FormatUSDValue(math.Inf(1)))
	assert.Equal(t, NotAvailable, u.FormatUSDValue(math.NaN()))
}

func TestFormatSupply(t *testing.T) {
	u := NewCurrencyUtils()

	assert.Equal(t, "1,000,000,000", u.FormatSupply("1000000000"))
	assert.Equal(t, "999,999,998", u.FormatSupply("999999998.1"))
	assert.Equal(t, "42", u.FormatSupply("42"))
	assert.Equal(t, NotAvailable, u.FormatSupply(""))
	assert.Equal(t, NotAvailable, u.FormatSupply("lots"))
}

func TestFormatRatio(t *testing.T) {
	u := NewCurrencyUtils()

	assert.Equal(t, "2.0", u.FormatRatio(2))
	assert.Equal(t, "17.12", u.FormatRatio(17.1234))
	assert.Equal(t, "0.33", u.FormatRatio(1.0/3.0))
	assert.Equal(t, "1.5", u.FormatRatio(1.5))
	assert.Equal(t, NotAvailable, u.FormatRatio(math.Inf(-1)))
}

func TestParseNumber(t *testing.T) {
	v, ok := ParseNumber(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = ParseNumber("Inf")
	assert.False(t, ok)

	_, ok = ParseNumber("")
	assert.False(t, ok)
}
