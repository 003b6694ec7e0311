package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency_String(t *testing.T) {
	assert.Equal(t, "USD", CurrencyUSD.String())
	assert.Equal(t, "RON", CurrencyRON.String())
	assert.Equal(t, "", Currency(0).String())
	assert.Equal(t, "", Currency(48).String())
}

func TestCurrency_Code(t *testing.T) {
	assert.Equal(t, 1, CurrencyUSD.Code())
	assert.Equal(t, 23, CurrencyCNY.Code())
}

func TestCurrency_Valid(t *testing.T) {
	for code := 1; code <= 47; code++ {
		assert.True(t, Currency(code).Valid(), "code %d", code)
	}
	assert.False(t, Currency(0).Valid())
	assert.False(t, Currency(48).Valid())
	assert.False(t, Currency(-1).Valid())
}

func TestCurrencyFromCode(t *testing.T) {
	c, ok := CurrencyFromCode(3)
	assert.True(t, ok)
	assert.Equal(t, CurrencyEUR, c)

	_, ok = CurrencyFromCode(99)
	assert.False(t, ok)
}

func TestCurrencyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Currency
		ok   bool
	}{
		{"USD", CurrencyUSD, true},
		{"usd", CurrencyUSD, true},
		{" Eur ", CurrencyEUR, true},
		{"KZT", CurrencyKZT, true},
		{"XYZ", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		c, ok := CurrencyFromName(tt.name)
		assert.Equal(t, tt.ok, ok, "name %q", tt.name)
		assert.Equal(t, tt.want, c, "name %q", tt.name)
	}
}

func TestLegacyCurrency(t *testing.T) {
	// Every legacy code also names a regular currency.
	for _, legacy := range []LegacyCurrency{
		LegacyCurrencySEK, LegacyCurrencyBYN, LegacyCurrencyBGN,
		LegacyCurrencyHRK, LegacyCurrencyCZK, LegacyCurrencyDKK,
		LegacyCurrencyHUF, LegacyCurrencyRON,
	} {
		assert.True(t, legacy.Valid())
		assert.True(t, Currency(legacy).Valid())
		assert.Equal(t, Currency(legacy).String(), legacy.String())
	}

	assert.False(t, LegacyCurrency(1).Valid())
	assert.False(t, LegacyCurrency(0).Valid())
}

func TestLegacyCurrencyFromCode(t *testing.T) {
	c, ok := LegacyCurrencyFromCode(33)
	assert.True(t, ok)
	assert.Equal(t, LegacyCurrencySEK, c)

	_, ok = LegacyCurrencyFromCode(1)
	assert.False(t, ok)
}

func TestLegacyCurrencyFromName(t *testing.T) {
	c, ok := LegacyCurrencyFromName("hrk")
	assert.True(t, ok)
	assert.Equal(t, LegacyCurrencyHRK, c)

	_, ok = LegacyCurrencyFromName("USD")
	assert.False(t, ok)
}
