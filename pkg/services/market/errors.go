package market

import (
	"fmt"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

// InvalidCurrencyError reports a currency input that resolves to no known
// currency code.
type InvalidCurrencyError struct {
	Value any
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("currency %v is not recognized by the community market", e.Value)
}

// LegacyCurrencyError reports a currency input that resolves to a retired
// code. It is distinct from InvalidCurrencyError: the code is recognized,
// just no longer accepted for live pricing.
type LegacyCurrencyError struct {
	Currency domain.LegacyCurrency
}

func (e *LegacyCurrencyError) Error() string {
	return fmt.Sprintf("currency %s is no longer supported by the community market", e.Currency)
}

// InvalidLanguageError reports a language input that resolves to no known
// language.
type InvalidLanguageError struct {
	Value any
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("language %v is not recognized by the community market", e.Value)
}

// InvalidPriceTypeError reports a price-type selector outside the accepted
// set, or a malformed conversion key list.
type InvalidPriceTypeError struct {
	Value any
	Valid []string
}

func (e *InvalidPriceTypeError) Error() string {
	return fmt.Sprintf("invalid price type %v, valid price types: %v", e.Value, e.Valid)
}

// LengthMismatchError reports parallel app-id and item-name lists of
// different lengths.
type LengthMismatchError struct {
	AppIDs int
	Names  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("app id list length %d does not match item name list length %d", e.AppIDs, e.Names)
}
