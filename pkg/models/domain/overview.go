package domain

import "github.com/shopspring/decimal"

// PriceType selects a price statistic of a market overview.
type PriceType string

const (
	PriceTypeLowest PriceType = "lowest_price"
	PriceTypeMedian PriceType = "median_price"
)

// OverviewKeys lists every convertible field of a PriceOverview.
var OverviewKeys = []string{string(PriceTypeLowest), string(PriceTypeMedian), "volume"}

// PriceOverview is the market's response bundle for one item, exactly as the
// remote renders it: prices are locale-formatted currency strings and the
// volume is a digit-grouped integer string. An empty field means the
// statistic is unavailable for the query, not that the lookup failed.
type PriceOverview struct {
	Success     bool
	LowestPrice string
	MedianPrice string
	Volume      string
}

// OverviewStats is the typed form of a PriceOverview. Nil fields mean the
// statistic was absent or could not be parsed from the formatted text.
type OverviewStats struct {
	Success     bool
	LowestPrice *decimal.Decimal
	MedianPrice *decimal.Decimal
	Volume      *int64
}

// Prices holds the price statistics of one item as exact decimals.
type Prices struct {
	Lowest *decimal.Decimal
	Median *decimal.Decimal
}

// Empty reports whether neither statistic is present.
func (p Prices) Empty() bool {
	return p.Lowest == nil && p.Median == nil
}
