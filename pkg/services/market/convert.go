package market

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

// The market renders prices in the locale of the requested currency, so the
// same amount may arrive as "1,234.56", "1.234,56", or "1234,56€". Separator
// meaning cannot be decided by character: a trailing 2-digit group is the
// cents component, everything before it is the integer part regardless of
// which separator character glued it together. The integer part is either a
// digit run grouped in threes or a plain ungrouped run.
var priceRe = regexp.MustCompile(`(\d{1,3}(?:[.,]\d{3})+|\d+)(?:[.,](\d{2}))?`)

// ParsePrice converts a locale-formatted currency string into an exact
// decimal with two fractional digits. The second result is false when the
// string holds no recognizable amount; callers treat that as "statistic
// absent", not as a failure.
func ParsePrice(s string) (decimal.Decimal, bool) {
	match := priceRe.FindStringSubmatch(s)
	if match == nil {
		return decimal.Decimal{}, false
	}

	intPart := strings.NewReplacer(",", "", ".", "").Replace(match[1])
	cents := match[2]
	if cents == "" {
		cents = "00"
	}

	d, err := decimal.NewFromString(intPart + "." + cents)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ParseVolume converts a digit-grouped sale count such as "1,842" into an
// integer. Absent or malformed input yields false.
func ParseVolume(s string) (int64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ConvertOverview produces the typed form of an overview. With no keys every
// convertible field is parsed; otherwise only the named ones are, and a key
// outside domain.OverviewKeys is rejected.
func ConvertOverview(o *domain.PriceOverview, keys ...string) (*domain.OverviewStats, error) {
	if o == nil {
		return nil, nil
	}
	if len(keys) == 0 {
		keys = domain.OverviewKeys
	}

	selected := make(map[string]bool, len(keys))
	for _, key := range keys {
		if !validOverviewKey(key) {
			return nil, &InvalidPriceTypeError{Value: key, Valid: domain.OverviewKeys}
		}
		selected[key] = true
	}

	stats := &domain.OverviewStats{Success: o.Success}
	if selected[string(domain.PriceTypeLowest)] {
		if d, ok := ParsePrice(o.LowestPrice); ok {
			stats.LowestPrice = &d
		}
	}
	if selected[string(domain.PriceTypeMedian)] {
		if d, ok := ParsePrice(o.MedianPrice); ok {
			stats.MedianPrice = &d
		}
	}
	if selected["volume"] {
		if n, ok := ParseVolume(o.Volume); ok {
			stats.Volume = &n
		}
	}
	return stats, nil
}

func validOverviewKey(key string) bool {
	for _, valid := range domain.OverviewKeys {
		if key == valid {
			return true
		}
	}
	return false
}
