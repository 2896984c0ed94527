package metrics

import (
	"math"
	"strconv"

	"github.com/tuncanbit/pairscope/internal/domain/models"
	"github.com/tuncanbit/pairscope/pkg/currency"
)

// Metric keys, in display order.
const (
	MetricName            = "name"
	MetricSymbol          = "symbol"
	MetricPrice           = "price"
	MetricMarketCap       = "market_cap"
	MetricFDV             = "fdv"
	MetricTotalSupply     = "total_supply"
	MetricLiquidity       = "liquidity"
	MetricPairLabel       = "pair_label"
	MetricExchange        = "exchange"
	MetricPriceChange24h  = "price_change_24h"
	MetricBuyVolume24h    = "buy_volume_24h"
	MetricSellVolume24h   = "sell_volume_24h"
	MetricTotalVolume24h  = "total_volume_24h"
	MetricBuyers24h       = "buyers_24h"
	MetricSellers24h      = "sellers_24h"
	MetricBuys24h         = "buys_24h"
	MetricSells24h        = "sells_24h"
	MetricMakers24h       = "makers_24h"
	MetricTransactions24h = "transactions_24h"
)

// Deriver turns a pair snapshot into display metrics and classified ratios.
// It holds no per-request state.
type Deriver struct {
	thresholds Thresholds
	currency   *currency.CurrencyUtils
}

func NewDeriver(thresholds Thresholds) *Deriver {
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	return &Deriver{
		thresholds: thresholds,
		currency:   currency.NewCurrencyUtils(),
	}
}

// Derive never fails: missing or non-numeric inputs degrade to N/A.
func (d *Deriver) Derive(snapshot *models.PairSnapshot) *models.Report {
	stats := snapshot.Stats
	if stats == nil {
		stats = &models.PairStats{}
	}
	metadata := snapshot.Metadata
	if metadata == nil {
		metadata = &models.TokenMetadata{}
	}

	name := firstNonEmpty(stats.TokenName, metadata.Name)

	return &models.Report{
		TokenName: name,
		Metrics:   d.metrics(stats, metadata, name),
		Ratios:    d.ratios(stats, metadata),
	}
}

func (d *Deriver) metrics(stats *models.PairStats, metadata *models.TokenMetadata, name string) []models.Metric {
	makers := stats.Buyers.Day().FloatOrZero() + stats.Sellers.Day().FloatOrZero()
	transactions := stats.Buys.Day().FloatOrZero() + stats.Sells.Day().FloatOrZero()

	priceChange := models.NotAvailable
	if change := stats.PricePercentChange.Day(); change.IsSet() {
		priceChange = change.String() + "%"
	}

	// Market cap is not published by the gateway, so FDV stands in for it.
	fdv := d.currency.FormatUSD(metadata.FullyDilutedValue.String())

	return []models.Metric{
		{Key: MetricName, Label: "Name", Value: orNotAvailable(name)},
		{Key: MetricSymbol, Label: "Symbol", Value: orNotAvailable(firstNonEmpty(stats.TokenSymbol, metadata.Symbol))},
		{Key: MetricPrice, Label: "Price", Value: d.currency.FormatUSD(stats.CurrentUsdPrice.String())},
		{Key: MetricMarketCap, Label: "Market Cap", Value: fdv},
		{Key: MetricFDV, Label: "FDV", Value: fdv},
		{Key: MetricTotalSupply, Label: "Total Supply", Value: d.currency.FormatSupply(metadata.TotalSupplyFormatted.String())},
		{Key: MetricLiquidity, Label: "Liquidity", Value: d.currency.FormatUSD(stats.TotalLiquidityUsd.String())},
		{Key: MetricPairLabel, Label: "Pair Label", Value: orNotAvailable(stats.PairLabel)},
		{Key: MetricExchange, Label: "Exchange", Value: orNotAvailable(stats.Exchange)},
		{Key: MetricPriceChange24h, Label: "Price Change 24h", Value: priceChange},
		{Key: MetricBuyVolume24h, Label: "Buy Volume 24h", Value: d.currency.FormatUSD(stats.BuyVolume.Day().String())},
		{Key: MetricSellVolume24h, Label: "Sell Volume 24h", Value: d.currency.FormatUSD(stats.SellVolume.Day().String())},
		{Key: MetricTotalVolume24h, Label: "Total Volume 24h", Value: d.currency.FormatUSD(stats.TotalVolume.Day().String())},
		{Key: MetricBuyers24h, Label: "Buyers 24h", Value: stats.Buyers.Day().Display()},
		{Key: MetricSellers24h, Label: "Sellers 24h", Value: stats.Sellers.Day().Display()},
		{Key: MetricBuys24h, Label: "Buys 24h", Value: stats.Buys.Day().Display()},
		{Key: MetricSells24h, Label: "Sells 24h", Value: stats.Sells.Day().Display()},
		{Key: MetricMakers24h, Label: "Makers 24h", Value: countOrNotAvailable(makers)},
		{Key: MetricTransactions24h, Label: "Transactions 24h", Value: countOrNotAvailable(transactions)},
	}
}

func (d *Deriver) ratios(stats *models.PairStats, metadata *models.TokenMetadata) []models.Ratio {
	liquidity := stats.TotalLiquidityUsd
	fdv := metadata.FullyDilutedValue
	buyers := stats.Buyers.Day()
	sellers := stats.Sellers.Day()

	values := map[string]func() (float64, bool){
		RatioLiquidityToMarketCap: func() (float64, bool) {
			return scaled(divide(liquidity, fdv))
		},
		RatioBuySell: func() (float64, bool) {
			return divide(stats.BuyVolume.Day(), stats.SellVolume.Day())
		},
		RatioBuysToBuyers: func() (float64, bool) {
			return divide(stats.Buys.Day(), buyers)
		},
		RatioSellsToSellers: func() (float64, bool) {
			return divide(stats.Sells.Day(), sellers)
		},
		RatioMarketCapPerParticipant: func() (float64, bool) {
			f, ok1 := fdv.NonZero()
			b, ok2 := buyers.NonZero()
			s, ok3 := sellers.NonZero()
			if !ok1 || !ok2 || !ok3 {
				return 0, false
			}
			return finite(f / (b + s))
		},
		RatioMarketCapVsFDV: func() (float64, bool) {
			return 1.0, true
		},
		RatioLiquidityPoolVsPrice: func() (float64, bool) {
			return scaled(divide(liquidity, stats.CurrentUsdPrice))
		},
		RatioVolumeVsLiquidity: func() (float64, bool) {
			return divide(stats.TotalVolume.Day(), liquidity)
		},
	}

	ratios := make([]models.Ratio, 0, len(RatioOrder))
	for _, name := range RatioOrder {
		value, available := values[name]()
		if !available {
			value = 0
		}
		ratios = append(ratios, models.Ratio{
			Name:      name,
			Value:     value,
			Available: available,
			Healthy:   d.thresholds.Classify(name, value, available),
		})
	}
	return ratios
}

// divide requires both operands to be present and non-zero.
func divide(numerator, denominator models.Value) (float64, bool) {
	n, ok := numerator.NonZero()
	if !ok {
		return 0, false
	}
	den, ok := denominator.NonZero()
	if !ok {
		return 0, false
	}
	return finite(n / den)
}

func scaled(value float64, ok bool) (float64, bool) {
	if !ok {
		return 0, false
	}
	return finite(value * 100)
}

func finite(value float64) (float64, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func countOrNotAvailable(value float64) string {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return models.NotAvailable
	}
	return strconv.FormatInt(int64(value), 10)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orNotAvailable(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
