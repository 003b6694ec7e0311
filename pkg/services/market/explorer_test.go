package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/store/steam"
)

// stubRequester serves canned overviews keyed by hash name and records every
// request it sees.
type stubRequester struct {
	overviews map[string]*domain.PriceOverview
	rateLimit bool
	calls     []call
}

type call struct {
	appID    int
	hashName string
	currency domain.Currency
	strict   bool
}

func (s *stubRequester) RequestOverview(
	_ context.Context,
	appID int,
	hashName string,
	currency domain.Currency,
	strict bool,
) (*domain.PriceOverview, error) {
	s.calls = append(s.calls, call{appID: appID, hashName: hashName, currency: currency, strict: strict})
	if s.rateLimit {
		return nil, &steam.RateLimitError{}
	}

	overview, ok := s.overviews[hashName]
	if !ok {
		if strict {
			return nil, &steam.InvalidItemError{AppID: appID, HashName: hashName}
		}
		return nil, nil
	}
	return overview, nil
}

func knownOverview() *domain.PriceOverview {
	return &domain.PriceOverview{
		Success:     true,
		LowestPrice: "$0.63",
		MedianPrice: "$0.65",
		Volume:      "1,842",
	}
}

func newTestExplorer(t *testing.T, r OverviewRequester, opts ...Option) Explorer {
	t.Helper()
	e, err := NewExplorer(r, opts...)
	require.NoError(t, err)
	return e
}

func TestNewExplorer_Defaults(t *testing.T) {
	e := newTestExplorer(t, &stubRequester{})
	assert.Equal(t, domain.CurrencyUSD, e.Currency())
	assert.Equal(t, domain.LanguageEnglish, e.Language())
}

func TestNewExplorer_LooseOptions(t *testing.T) {
	e := newTestExplorer(t, &stubRequester{}, WithCurrency("eur"), WithLanguage("zh-CN"))
	assert.Equal(t, domain.CurrencyEUR, e.Currency())
	assert.Equal(t, domain.LanguageChineseSimplified, e.Language())
}

func TestNewExplorer_LegacyCurrencyRejected(t *testing.T) {
	_, err := NewExplorer(&stubRequester{}, WithCurrency("SEK"))

	var legacyErr *LegacyCurrencyError
	require.ErrorAs(t, err, &legacyErr)
}

func TestNewExplorer_InvalidLanguageRejected(t *testing.T) {
	_, err := NewExplorer(&stubRequester{}, WithLanguage("klingon"))

	var invalidErr *InvalidLanguageError
	require.ErrorAs(t, err, &invalidErr)
}

func TestNewExplorer_NilRequester(t *testing.T) {
	_, err := NewExplorer(nil)
	require.Error(t, err)
}

func TestGetOverview_SanitizesNameAndUsesDefaultCurrency(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{
		"AK-47 | Redline (Field-Tested)-Variant": knownOverview(),
	}}
	e := newTestExplorer(t, stub)

	overview, err := e.GetOverview(context.Background(), 730, "AK-47 | Redline (Field-Tested)/Variant")
	require.NoError(t, err)
	require.NotNil(t, overview)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, "AK-47 | Redline (Field-Tested)-Variant", stub.calls[0].hashName)
	assert.Equal(t, domain.CurrencyUSD, stub.calls[0].currency)
	assert.True(t, stub.calls[0].strict)
}

func TestGetOverview_QueryCurrencyOverride(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"key": knownOverview()}}
	e := newTestExplorer(t, stub)

	_, err := e.GetOverview(context.Background(), domain.AppCSGO, "key", QueryCurrency("EUR"))
	require.NoError(t, err)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, domain.CurrencyEUR, stub.calls[0].currency)
	assert.Equal(t, 730, stub.calls[0].appID)
}

func TestGetOverview_UnknownItemFails(t *testing.T) {
	e := newTestExplorer(t, &stubRequester{})

	_, err := e.GetOverview(context.Background(), 730, "no such item")

	var invalidItem *steam.InvalidItemError
	require.ErrorAs(t, err, &invalidItem)
}

func TestGetOverviews_UnknownItemsGetNilEntries(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"known": knownOverview()}}
	e := newTestExplorer(t, stub)

	result, err := e.GetOverviews(context.Background(), 730, []string{"known", "unknown"})
	require.NoError(t, err)

	// Both keys present; the failed lookup maps to nil rather than being
	// omitted.
	require.Len(t, result, 2)
	assert.NotNil(t, result["known"])
	assert.Nil(t, result["unknown"])
	assert.Contains(t, result, "unknown")

	for _, c := range stub.calls {
		assert.False(t, c.strict)
	}
}

func TestGetOverviews_ParallelAppIDs(t *testing.T) {
	stub := &stubRequester{}
	e := newTestExplorer(t, stub)

	_, err := e.GetOverviews(context.Background(), []int{440, 730}, []string{"a", "b"})
	require.NoError(t, err)

	require.Len(t, stub.calls, 2)
	assert.Equal(t, 440, stub.calls[0].appID)
	assert.Equal(t, 730, stub.calls[1].appID)
}

func TestGetOverviews_LengthMismatch(t *testing.T) {
	e := newTestExplorer(t, &stubRequester{})

	_, err := e.GetOverviews(context.Background(), []int{440}, []string{"a", "b"})

	var mismatch *LengthMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestGetOverviews_RateLimitPropagates(t *testing.T) {
	e := newTestExplorer(t, &stubRequester{rateLimit: true})

	_, err := e.GetOverviews(context.Background(), 730, []string{"a", "b"})

	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
}

func TestGetOverviewsFromMap(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"known": knownOverview()}}
	e := newTestExplorer(t, stub)

	result, err := e.GetOverviewsFromMap(context.Background(), map[int][]string{
		730: {"known"},
		440: {"unknown"},
	})
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.NotNil(t, result["known"])
	assert.Contains(t, result, "unknown")
	assert.Nil(t, result["unknown"])
}

func TestGetOverviewsFromMap_DecodedJSONShape(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"a-b": knownOverview()}}
	e := newTestExplorer(t, stub)

	result, err := e.GetOverviewsFromMap(context.Background(), map[string]any{
		"730": []any{"a/b"},
	})
	require.NoError(t, err)

	require.Len(t, result, 1)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, 730, stub.calls[0].appID)
	assert.Equal(t, "a-b", stub.calls[0].hashName)
	assert.NotNil(t, result["a-b"])
}

func TestGetStats(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"key": knownOverview()}}
	e := newTestExplorer(t, stub)

	stats, err := e.GetStats(context.Background(), 730, "key")
	require.NoError(t, err)
	require.NotNil(t, stats)

	require.NotNil(t, stats.LowestPrice)
	assert.Equal(t, "0.63", stats.LowestPrice.StringFixed(2))
	require.NotNil(t, stats.Volume)
	assert.Equal(t, int64(1842), *stats.Volume)
}

func TestGetStats_ConvertOnly(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"key": knownOverview()}}
	e := newTestExplorer(t, stub)

	stats, err := e.GetStats(context.Background(), 730, "key", ConvertOnly("median_price"))
	require.NoError(t, err)

	assert.Nil(t, stats.LowestPrice)
	assert.NotNil(t, stats.MedianPrice)
	assert.Nil(t, stats.Volume)
}

func TestGetPrices(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"key": knownOverview()}}
	e := newTestExplorer(t, stub)

	prices, err := e.GetPrices(context.Background(), 730, "key")
	require.NoError(t, err)
	require.NotNil(t, prices)

	require.NotNil(t, prices.Lowest)
	assert.Equal(t, "0.63", prices.Lowest.StringFixed(2))
	require.NotNil(t, prices.Median)
	assert.Equal(t, "0.65", prices.Median.StringFixed(2))
}

func TestGetPrices_NoStatistics(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{
		"key": {Success: true, Volume: "12"},
	}}
	e := newTestExplorer(t, stub)

	prices, err := e.GetPrices(context.Background(), 730, "key")
	require.NoError(t, err)
	assert.Nil(t, prices)
}

func TestGetPrice(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"key": knownOverview()}}
	e := newTestExplorer(t, stub)

	price, err := e.GetPrice(context.Background(), 730, "key", "median_price")
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, "0.65", price.StringFixed(2))
}

func TestGetPrice_InvalidType(t *testing.T) {
	e := newTestExplorer(t, &stubRequester{})

	_, err := e.GetPrice(context.Background(), 730, "key", "highest_price")

	var ipt *InvalidPriceTypeError
	require.ErrorAs(t, err, &ipt)
}

func TestGetPrice_AbsentStatistic(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{
		"key": {Success: true, LowestPrice: "$0.63"},
	}}
	e := newTestExplorer(t, stub)

	price, err := e.GetPrice(context.Background(), 730, "key", domain.PriceTypeMedian)
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestGetLowestAndMedianPrice(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"key": knownOverview()}}
	e := newTestExplorer(t, stub)

	lowest, err := e.GetLowestPrice(context.Background(), 730, "key")
	require.NoError(t, err)
	require.NotNil(t, lowest)
	assert.Equal(t, "0.63", lowest.StringFixed(2))

	median, err := e.GetMedianPrice(context.Background(), 730, "key")
	require.NoError(t, err)
	require.NotNil(t, median)
	assert.Equal(t, "0.65", median.StringFixed(2))
}

func TestGetVolume(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{"key": knownOverview()}}
	e := newTestExplorer(t, stub)

	volume, err := e.GetVolume(context.Background(), 730, "key")
	require.NoError(t, err)
	require.NotNil(t, volume)
	assert.Equal(t, int64(1842), *volume)
}

func TestGetVolume_Absent(t *testing.T) {
	stub := &stubRequester{overviews: map[string]*domain.PriceOverview{
		"key": {Success: true, LowestPrice: "$0.63"},
	}}
	e := newTestExplorer(t, stub)

	volume, err := e.GetVolume(context.Background(), 730, "key")
	require.NoError(t, err)
	assert.Nil(t, volume)
}
