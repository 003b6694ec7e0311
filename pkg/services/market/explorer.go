package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/store/steam"
	"github.com/de-tools/market-atlas/pkg/validate"
)

// OverviewRequester is the transport collaborator. strict selects whether an
// unrecognized app/item combination fails or yields a nil overview; rate
// limiting fails in either mode.
type OverviewRequester interface {
	RequestOverview(ctx context.Context, appID int, hashName string,
		currency domain.Currency, strict bool) (*domain.PriceOverview, error)
}

// Explorer exposes the community market's pricing data. It holds the default
// currency and language for its lifetime; both can be overridden per query.
type Explorer interface {
	GetOverview(ctx context.Context, appID any, name string, opts ...QueryOption) (*domain.PriceOverview, error)
	GetOverviews(ctx context.Context, appIDs any, names []string, opts ...QueryOption) (map[string]*domain.PriceOverview, error)
	GetOverviewsFromMap(ctx context.Context, items any, opts ...QueryOption) (map[string]*domain.PriceOverview, error)
	GetStats(ctx context.Context, appID any, name string, opts ...QueryOption) (*domain.OverviewStats, error)
	GetPrices(ctx context.Context, appID any, name string, opts ...QueryOption) (*domain.Prices, error)
	GetPrice(ctx context.Context, appID any, name string, priceType any, opts ...QueryOption) (*decimal.Decimal, error)
	GetLowestPrice(ctx context.Context, appID any, name string, opts ...QueryOption) (*decimal.Decimal, error)
	GetMedianPrice(ctx context.Context, appID any, name string, opts ...QueryOption) (*decimal.Decimal, error)
	GetVolume(ctx context.Context, appID any, name string) (*int64, error)
	Currency() domain.Currency
	Language() domain.Language
}

type marketExplorer struct {
	requester OverviewRequester
	currency  domain.Currency
	language  domain.Language
}

// Option configures a new Explorer.
type Option func(*explorerSettings)

type explorerSettings struct {
	currency any
	language any
}

// WithCurrency sets the default pricing currency. Accepts a domain.Currency,
// a numeric code, or a currency name.
func WithCurrency(v any) Option {
	return func(s *explorerSettings) { s.currency = v }
}

// WithLanguage sets the default display language. Accepts a domain.Language
// or any recognized spelling of one.
func WithLanguage(v any) Option {
	return func(s *explorerSettings) { s.language = v }
}

// NewExplorer creates a market explorer backed by the given transport.
// Defaults are USD and English.
func NewExplorer(r OverviewRequester, opts ...Option) (Explorer, error) {
	if r == nil {
		return nil, fmt.Errorf("overview requester must be provided")
	}

	settings := &explorerSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	e := &marketExplorer{
		requester: r,
		currency:  domain.CurrencyUSD,
		language:  domain.LanguageEnglish,
	}
	if settings.currency != nil {
		currency, err := sanitizeCurrency(settings.currency)
		if err != nil {
			return nil, err
		}
		e.currency = currency
	}
	if settings.language != nil {
		language, err := sanitizeLanguage(settings.language)
		if err != nil {
			return nil, err
		}
		e.language = language
	}
	return e, nil
}

// QueryOption adjusts a single operation.
type QueryOption func(*querySettings)

type querySettings struct {
	currency    any
	convertKeys []string
}

// QueryCurrency overrides the pricing currency for one query.
func QueryCurrency(v any) QueryOption {
	return func(s *querySettings) { s.currency = v }
}

// ConvertOnly restricts which overview fields GetStats converts.
func ConvertOnly(keys ...string) QueryOption {
	return func(s *querySettings) { s.convertKeys = keys }
}

func (e *marketExplorer) Currency() domain.Currency { return e.currency }
func (e *marketExplorer) Language() domain.Language { return e.language }

// resolveQuery sanitizes per-query overrides, falling back to the explorer
// defaults.
func (e *marketExplorer) resolveQuery(opts []QueryOption) (querySettings, domain.Currency, error) {
	settings := querySettings{}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.currency == nil {
		return settings, e.currency, nil
	}
	currency, err := sanitizeCurrency(settings.currency)
	if err != nil {
		return settings, 0, err
	}
	return settings, currency, nil
}

func (e *marketExplorer) GetOverview(ctx context.Context, appID any, name string, opts ...QueryOption) (*domain.PriceOverview, error) {
	_, currency, err := e.resolveQuery(opts)
	if err != nil {
		return nil, err
	}

	id, err := sanitizeAppID(appID)
	if err != nil {
		return nil, err
	}
	hashName := sanitizeHashName(name)

	if err := validate.Args(
		validate.Check("appID", id, validate.Of[int]()),
		validate.Check("name", hashName, validate.Of[string]()),
	); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("app_id", id).
		Str("hash_name", hashName).
		Str("currency", currency.String()).
		Msg("fetching item overview")

	return e.requester.RequestOverview(ctx, id, hashName, currency, true)
}

func (e *marketExplorer) GetOverviews(ctx context.Context, appIDs any, names []string, opts ...QueryOption) (map[string]*domain.PriceOverview, error) {
	_, currency, err := e.resolveQuery(opts)
	if err != nil {
		return nil, err
	}

	hashNames := sanitizeHashNames(names)
	ids, err := sanitizeAppIDs(appIDs, len(hashNames))
	if err != nil {
		return nil, err
	}

	if err := validate.Args(
		validate.Check("appIDs", ids, validate.Slice(validate.Of[int]())),
		validate.Check("names", hashNames, validate.Slice(validate.Of[string]())),
	); err != nil {
		return nil, err
	}

	result := make(map[string]*domain.PriceOverview, len(hashNames))
	for i, hashName := range hashNames {
		overview, err := e.requester.RequestOverview(ctx, ids[i], hashName, currency, false)
		if err != nil {
			return nil, err
		}
		// A failed lookup still gets its entry; only throttling aborts.
		result[hashName] = overview
	}
	return result, nil
}

func (e *marketExplorer) GetOverviewsFromMap(ctx context.Context, items any, opts ...QueryOption) (map[string]*domain.PriceOverview, error) {
	_, currency, err := e.resolveQuery(opts)
	if err != nil {
		return nil, err
	}

	itemMap, err := sanitizeItemMap(items)
	if err != nil {
		return nil, err
	}
	if err := validate.Check("items", itemMap, itemMapShape); err != nil {
		return nil, err
	}

	result := make(map[string]*domain.PriceOverview)
	for id, names := range itemMap {
		for _, name := range names {
			hashName := sanitizeHashName(name)
			overview, err := e.requester.RequestOverview(ctx, id, hashName, currency, false)
			if err != nil {
				return nil, err
			}
			result[hashName] = overview
		}
	}
	return result, nil
}

func (e *marketExplorer) GetStats(ctx context.Context, appID any, name string, opts ...QueryOption) (*domain.OverviewStats, error) {
	settings := querySettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	overview, err := e.GetOverview(ctx, appID, name, opts...)
	if err != nil {
		return nil, err
	}
	return ConvertOverview(overview, settings.convertKeys...)
}

func (e *marketExplorer) GetPrices(ctx context.Context, appID any, name string, opts ...QueryOption) (*domain.Prices, error) {
	overview, err := e.GetOverview(ctx, appID, name, opts...)
	if err != nil || overview == nil {
		return nil, err
	}

	prices := &domain.Prices{}
	if d, ok := ParsePrice(overview.LowestPrice); ok {
		prices.Lowest = &d
	}
	if d, ok := ParsePrice(overview.MedianPrice); ok {
		prices.Median = &d
	}
	if prices.Empty() {
		return nil, nil
	}
	return prices, nil
}

func (e *marketExplorer) GetPrice(ctx context.Context, appID any, name string, priceType any, opts ...QueryOption) (*decimal.Decimal, error) {
	types, err := sanitizePriceTypes(priceType)
	if err != nil {
		return nil, err
	}
	if len(types) != 1 {
		return nil, &InvalidPriceTypeError{Value: priceType, Valid: validPriceTypes}
	}

	overview, err := e.GetOverview(ctx, appID, name, opts...)
	if err != nil || overview == nil {
		return nil, err
	}

	raw := overview.LowestPrice
	if types[0] == domain.PriceTypeMedian {
		raw = overview.MedianPrice
	}
	if d, ok := ParsePrice(raw); ok {
		return &d, nil
	}
	return nil, nil
}

func (e *marketExplorer) GetLowestPrice(ctx context.Context, appID any, name string, opts ...QueryOption) (*decimal.Decimal, error) {
	return e.GetPrice(ctx, appID, name, domain.PriceTypeLowest, opts...)
}

func (e *marketExplorer) GetMedianPrice(ctx context.Context, appID any, name string, opts ...QueryOption) (*decimal.Decimal, error) {
	return e.GetPrice(ctx, appID, name, domain.PriceTypeMedian, opts...)
}

func (e *marketExplorer) GetVolume(ctx context.Context, appID any, name string) (*int64, error) {
	overview, err := e.GetOverview(ctx, appID, name)
	if err != nil || overview == nil {
		return nil, err
	}
	if n, ok := ParseVolume(overview.Volume); ok {
		return &n, nil
	}
	return nil, nil
}

// IsRateLimited reports whether err carries the market's throttling signal.
func IsRateLimited(err error) bool {
	var rle *steam.RateLimitError
	return errors.As(err, &rle)
}
