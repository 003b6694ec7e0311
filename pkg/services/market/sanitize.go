package market

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/validate"
)

// The sanitizers below collapse the loosely-typed convenience shapes the
// public API accepts into one canonical form each. They run before shape
// validation, so callers may pass enums, plain integers, or strings
// interchangeably and still end up with canonical values.

// sanitizeCurrency accepts a domain.Currency, domain.LegacyCurrency, any
// integer kind, or a currency name string. Legacy membership is checked
// before the unknown check: legacy codes look numerically valid, so testing
// order decides which error the caller sees.
func sanitizeCurrency(v any) (domain.Currency, error) {
	switch cur := v.(type) {
	case domain.Currency:
		if legacy, ok := domain.LegacyCurrencyFromCode(cur.Code()); ok {
			return 0, &LegacyCurrencyError{Currency: legacy}
		}
		if !cur.Valid() {
			return 0, &InvalidCurrencyError{Value: v}
		}
		return cur, nil
	case domain.LegacyCurrency:
		return 0, &LegacyCurrencyError{Currency: cur}
	case string:
		if legacy, ok := domain.LegacyCurrencyFromName(cur); ok {
			return 0, &LegacyCurrencyError{Currency: legacy}
		}
		c, ok := domain.CurrencyFromName(cur)
		if !ok {
			return 0, &InvalidCurrencyError{Value: v}
		}
		return c, nil
	}

	code, ok := asInt(v)
	if !ok {
		return 0, &InvalidCurrencyError{Value: v}
	}
	if legacy, ok := domain.LegacyCurrencyFromCode(code); ok {
		return 0, &LegacyCurrencyError{Currency: legacy}
	}
	c, ok := domain.CurrencyFromCode(code)
	if !ok {
		return 0, &InvalidCurrencyError{Value: v}
	}
	return c, nil
}

// sanitizeLanguage accepts a domain.Language or any string spelling the
// language resolves from.
func sanitizeLanguage(v any) (domain.Language, error) {
	switch lang := v.(type) {
	case domain.Language:
		if !lang.Valid() {
			return 0, &InvalidLanguageError{Value: v}
		}
		return lang, nil
	case string:
		l, ok := domain.LanguageFromString(lang)
		if !ok {
			return 0, &InvalidLanguageError{Value: v}
		}
		return l, nil
	}
	return 0, &InvalidLanguageError{Value: v}
}

// sanitizeAppID coerces a domain.AppID or integer kind to a plain int.
// Negative values are rejected; beyond that app ids are not validated
// against the known catalog set; the remote endpoint is the authority.
func sanitizeAppID(v any) (int, error) {
	if id, ok := v.(domain.AppID); ok && id >= 0 {
		return int(id), nil
	}
	id, ok := asInt(v)
	if !ok || id < 0 {
		return 0, shapeError("appID", v, appIDShape)
	}
	return id, nil
}

// shapeError builds the mismatch error unconditionally; unlike
// validate.Check it is used where coercion already failed.
func shapeError(name string, v any, s validate.Shape) error {
	actual := "nil"
	if v != nil {
		actual = reflect.TypeOf(v).String()
	}
	return &validate.TypeMismatchError{Arg: name, Expected: s.String(), Actual: actual}
}

// sanitizeAppIDs coerces a scalar or slice of app-id-like values into a
// []int of length n. A scalar broadcasts; a slice must already have length n.
func sanitizeAppIDs(v any, n int) ([]int, error) {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.Slice {
		if rv.Len() != n {
			return nil, &LengthMismatchError{AppIDs: rv.Len(), Names: n}
		}
		ids := make([]int, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			id, err := sanitizeAppID(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}
		return ids, nil
	}

	id, err := sanitizeAppID(v)
	if err != nil {
		return nil, err
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = id
	}
	return ids, nil
}

// sanitizeMapAppID additionally accepts digit strings, since JSON object
// keys always decode as strings.
func sanitizeMapAppID(v any) (int, error) {
	if s, ok := v.(string); ok {
		id, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || id < 0 {
			return 0, shapeError("items", v, itemMapShape)
		}
		return id, nil
	}
	return sanitizeAppID(v)
}

// sanitizeHashName applies the market's hash-name encoding rule: "/" is not
// accepted in item names and is rendered as "-".
func sanitizeHashName(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}

func sanitizeHashNames(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = sanitizeHashName(name)
	}
	return out
}

// sanitizeItemMap coerces a mapping from app-id-like keys to item-name lists
// into map[int][]string, preserving every entry. Decoded-JSON shapes
// (map[string]any with []any values) are accepted alongside the typed ones.
func sanitizeItemMap(v any) (map[int][]string, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, shapeError("items", v, itemMapShape)
	}

	out := make(map[int][]string, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		id, err := sanitizeMapAppID(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		names, err := coerceStrings(iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		out[id] = names
	}
	return out, nil
}

// sanitizePriceTypes accepts a single price-type value or a slice of them,
// normalizing a lone value to a one-element slice. Every element must be one
// of the known price statistics.
func sanitizePriceTypes(v any) ([]domain.PriceType, error) {
	one := func(x any) (domain.PriceType, error) {
		var pt domain.PriceType
		switch t := x.(type) {
		case domain.PriceType:
			pt = t
		case string:
			pt = domain.PriceType(t)
		default:
			return "", &InvalidPriceTypeError{Value: x, Valid: validPriceTypes}
		}
		if pt != domain.PriceTypeLowest && pt != domain.PriceTypeMedian {
			return "", &InvalidPriceTypeError{Value: x, Valid: validPriceTypes}
		}
		return pt, nil
	}

	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.Slice {
		types := make([]domain.PriceType, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			pt, err := one(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			types[i] = pt
		}
		return types, nil
	}

	pt, err := one(v)
	if err != nil {
		return nil, err
	}
	return []domain.PriceType{pt}, nil
}

var validPriceTypes = []string{string(domain.PriceTypeLowest), string(domain.PriceTypeMedian)}

// Shapes used in mismatch reports for the loosely-typed inputs.
var (
	appIDShape = validate.Union(
		validate.Of[domain.AppID](),
		validate.Of[int](),
		validate.Of[int64](),
		validate.Of[float64](),
	)
	itemMapShape = validate.Map(
		validate.Union(validate.Of[domain.AppID](), validate.Of[int](), validate.Of[string]()),
		validate.Slice(validate.Of[string]()),
	)
)

// asInt accepts any integer kind, plus whole float64 values so that numbers
// decoded from JSON coerce cleanly.
func asInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == float64(int(f)) {
			return int(f), true
		}
	}
	return 0, false
}

// coerceStrings converts a []string or decoded-JSON []any of strings into a
// plain string slice.
func coerceStrings(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, shapeError("items", v, validate.Slice(validate.Of[string]()))
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, shapeError("items", v, validate.Slice(validate.Of[string]()))
}
