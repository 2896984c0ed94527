package metrics

import (
	"github.com/tuncanbit/pairscope/pkg/config"
)

const (
	RatioLiquidityToMarketCap    = "Liquidity to Market Cap"
	RatioBuySell                 = "Buy/Sell Ratio"
	RatioBuysToBuyers            = "Buys-to-Buyers"
	RatioSellsToSellers          = "Sells-to-Sellers"
	RatioMarketCapPerParticipant = "Market Cap per Participant"
	RatioMarketCapVsFDV          = "Market Cap vs FDV"
	RatioLiquidityPoolVsPrice    = "Liquidity Pool vs Price"
	RatioVolumeVsLiquidity       = "Volume vs Liquidity"
)

// RatioOrder is the display order of the derived ratios.
var RatioOrder = []string{
	RatioLiquidityToMarketCap,
	RatioBuySell,
	RatioBuysToBuyers,
	RatioSellsToSellers,
	RatioMarketCapPerParticipant,
	RatioMarketCapVsFDV,
	RatioLiquidityPoolVsPrice,
	RatioVolumeVsLiquidity,
}

// Rule is an inclusive health predicate. When Equals is set, Min and Max are ignored.
type Rule struct {
	Min    *float64
	Max    *float64
	Equals *float64
}

func (r Rule) Healthy(value float64) bool {
	if r.Equals != nil {
		return value == *r.Equals
	}
	if r.Min != nil && value < *r.Min {
		return false
	}
	if r.Max != nil && value > *r.Max {
		return false
	}
	return r.Min != nil || r.Max != nil
}

// Thresholds maps ratio names to their health rules.
type Thresholds map[string]Rule

func Between(min, max float64) Rule { return Rule{Min: &min, Max: &max} }
func AtLeast(min float64) Rule      { return Rule{Min: &min} }
func AtMost(max float64) Rule       { return Rule{Max: &max} }
func EqualTo(v float64) Rule        { return Rule{Equals: &v} }

func DefaultThresholds() Thresholds {
	return Thresholds{
		RatioLiquidityToMarketCap:    Between(5, 30),
		RatioBuySell:                 Between(1, 1.5),
		RatioBuysToBuyers:            Between(1, 10),
		RatioSellsToSellers:          Between(1, 10),
		RatioMarketCapPerParticipant: Between(500, 5000),
		RatioMarketCapVsFDV:          EqualTo(1.0),
		RatioLiquidityPoolVsPrice:    AtLeast(10),
		RatioVolumeVsLiquidity:       AtMost(5),
	}
}

// ThresholdsFromConfig overlays configured rules on the defaults.
func ThresholdsFromConfig(overrides map[string]config.ThresholdConfig) Thresholds {
	thresholds := DefaultThresholds()
	for name, o := range overrides {
		thresholds[name] = Rule{Min: o.Min, Max: o.Max, Equals: o.Equals}
	}
	return thresholds
}

// Classify reports whether an available ratio value is healthy. Unknown ratios
// are never healthy.
func (t Thresholds) Classify(name string, value float64, available bool) bool {
	if !available {
		return false
	}
	rule, ok := t[name]
	if !ok {
		return false
	}
	return rule.Healthy(value)
}
