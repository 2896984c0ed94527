package models

import (
	"encoding/json"
	"strings"

	"github.com/tuncanbit/pairscope/pkg/currency"
)

// NotAvailable marks a metric or ratio that could not be derived.
const NotAvailable = currency.NotAvailable

// DayWindow is the bucket key used for all 24h statistics.
const DayWindow = "24h"

// Value is a loosely typed scalar from the data gateway. Numbers arrive as JSON
// numbers, quoted strings or null.
type Value struct {
	raw   string
	valid bool
}

func NewValue(raw string) Value {
	return Value{raw: raw, valid: true}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = Value{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*v = Value{raw: str, valid: true}
		return nil
	}
	*v = Value{raw: s, valid: true}
	return nil
}

func (v Value) IsSet() bool {
	return v.valid && strings.TrimSpace(v.raw) != ""
}

// Float reports the numeric value and whether one could be parsed.
func (v Value) Float() (float64, bool) {
	if !v.IsSet() {
		return 0, false
	}
	return currency.ParseNumber(v.raw)
}

// FloatOrZero mirrors a lenient conversion where anything unusable counts as zero.
func (v Value) FloatOrZero() float64 {
	f, _ := v.Float()
	return f
}

// NonZero returns the value only when it parses and is not zero.
func (v Value) NonZero() (float64, bool) {
	f, ok := v.Float()
	if !ok || f == 0 {
		return 0, false
	}
	return f, true
}

func (v Value) String() string {
	return v.raw
}

// Display returns the raw upstream text, or NotAvailable when absent.
func (v Value) Display() string {
	if !v.IsSet() {
		return NotAvailable
	}
	return v.raw
}

// Window holds a statistic bucketed by time window ("5m", "1h", "24h", ...).
type Window map[string]Value

func (w Window) Day() Value {
	return w[DayWindow]
}

// PairStats is the gateway's view of a trading pair.
type PairStats struct {
	TokenAddress       string `json:"tokenAddress"`
	TokenName          string `json:"tokenName"`
	TokenSymbol        string `json:"tokenSymbol"`
	TokenLogo          string `json:"tokenLogo"`
	PairLabel          string `json:"pairLabel"`
	PairAddress        string `json:"pairAddress"`
	Exchange           string `json:"exchange"`
	ExchangeAddress    string `json:"exchangeAddress"`
	CurrentUsdPrice    Value  `json:"currentUsdPrice"`
	TotalLiquidityUsd  Value  `json:"totalLiquidityUsd"`
	PricePercentChange Window `json:"pricePercentChange"`
	BuyVolume          Window `json:"buyVolume"`
	SellVolume         Window `json:"sellVolume"`
	TotalVolume        Window `json:"totalVolume"`
	Buyers             Window `json:"buyers"`
	Sellers            Window `json:"sellers"`
	Buys               Window `json:"buys"`
	Sells              Window `json:"sells"`
}

type TokenMetadata struct {
	Mint                 string `json:"mint"`
	Standard             string `json:"standard"`
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	Decimals             Value  `json:"decimals"`
	TotalSupply          Value  `json:"totalSupply"`
	TotalSupplyFormatted Value  `json:"totalSupplyFormatted"`
	FullyDilutedValue    Value  `json:"fullyDilutedValue"`
}

// PairSnapshot is the result of the two-step fetch. Metadata is empty, never
// nil, when the stats carried no token address.
type PairSnapshot struct {
	PairAddress string
	Stats       *PairStats
	Metadata    *TokenMetadata
}
