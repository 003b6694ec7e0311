package domain

import "strings"

// Currency is a numeric currency code understood by the Steam Community
// Market. The set covers every currency Steam has supported at some point,
// including the retired ones listed in LegacyCurrency.
type Currency int

const (
	CurrencyUSD Currency = 1  // United States Dollar
	CurrencyGBP Currency = 2  // Great Britain Pound
	CurrencyEUR Currency = 3  // Euro
	CurrencyCHF Currency = 4  // Swiss Franc
	CurrencyRUB Currency = 5  // Russian Ruble
	CurrencyPLN Currency = 6  // Polish Złoty
	CurrencyBRL Currency = 7  // Brazilian Real
	CurrencyJPY Currency = 8  // Japanese Yen
	CurrencyNOK Currency = 9  // Norwegian Krone
	CurrencyIDR Currency = 10 // Indonesian Rupiah
	CurrencyMYR Currency = 11 // Malaysian Ringgit
	CurrencyPHP Currency = 12 // Philippine Peso
	CurrencySGD Currency = 13 // Singapore Dollar
	CurrencyTHB Currency = 14 // Thai Baht
	CurrencyVND Currency = 15 // Vietnamese Dong
	CurrencyKRW Currency = 16 // South Korean Won
	CurrencyTRY Currency = 17 // Turkish Lira
	CurrencyUAH Currency = 18 // Ukrainian Hryvnia
	CurrencyMXN Currency = 19 // Mexican Peso
	CurrencyCAD Currency = 20 // Canadian Dollar
	CurrencyAUD Currency = 21 // Australian Dollar
	CurrencyNZD Currency = 22 // New Zealand Dollar
	CurrencyCNY Currency = 23 // Chinese Yuan
	CurrencyINR Currency = 24 // Indian Rupee
	CurrencyCLP Currency = 25 // Chilean Peso
	CurrencyPEN Currency = 26 // Peruvian Sol
	CurrencyCOP Currency = 27 // Colombian Peso
	CurrencyZAR Currency = 28 // South African Rand
	CurrencyHKD Currency = 29 // Hong Kong Dollar
	CurrencyTWD Currency = 30 // New Taiwan Dollar
	CurrencySAR Currency = 31 // Saudi Riyal
	CurrencyAED Currency = 32 // United Arab Emirates Dirham
	CurrencySEK Currency = 33 // Swedish Krona
	CurrencyARS Currency = 34 // Argentine Peso
	CurrencyILS Currency = 35 // Israeli New Sheqel
	CurrencyBYN Currency = 36 // Belarusian Ruble
	CurrencyKZT Currency = 37 // Kazakhstani Tenge
	CurrencyKWD Currency = 38 // Kuwaiti Dinar
	CurrencyQAR Currency = 39 // Qatari Rial
	CurrencyCRC Currency = 40 // Costa Rican Colón
	CurrencyUYU Currency = 41 // Uruguayan Peso
	CurrencyBGN Currency = 42 // Bulgarian Lev
	CurrencyHRK Currency = 43 // Croatian Kuna
	CurrencyCZK Currency = 44 // Czech Koruna
	CurrencyDKK Currency = 45 // Danish Krone
	CurrencyHUF Currency = 46 // Hungarian Forint
	CurrencyRON Currency = 47 // Romanian Leu
)

var currencyNames = map[Currency]string{
	CurrencyUSD: "USD", CurrencyGBP: "GBP", CurrencyEUR: "EUR",
	CurrencyCHF: "CHF", CurrencyRUB: "RUB", CurrencyPLN: "PLN",
	CurrencyBRL: "BRL", CurrencyJPY: "JPY", CurrencyNOK: "NOK",
	CurrencyIDR: "IDR", CurrencyMYR: "MYR", CurrencyPHP: "PHP",
	CurrencySGD: "SGD", CurrencyTHB: "THB", CurrencyVND: "VND",
	CurrencyKRW: "KRW", CurrencyTRY: "TRY", CurrencyUAH: "UAH",
	CurrencyMXN: "MXN", CurrencyCAD: "CAD", CurrencyAUD: "AUD",
	CurrencyNZD: "NZD", CurrencyCNY: "CNY", CurrencyINR: "INR",
	CurrencyCLP: "CLP", CurrencyPEN: "PEN", CurrencyCOP: "COP",
	CurrencyZAR: "ZAR", CurrencyHKD: "HKD", CurrencyTWD: "TWD",
	CurrencySAR: "SAR", CurrencyAED: "AED", CurrencySEK: "SEK",
	CurrencyARS: "ARS", CurrencyILS: "ILS", CurrencyBYN: "BYN",
	CurrencyKZT: "KZT", CurrencyKWD: "KWD", CurrencyQAR: "QAR",
	CurrencyCRC: "CRC", CurrencyUYU: "UYU", CurrencyBGN: "BGN",
	CurrencyHRK: "HRK", CurrencyCZK: "CZK", CurrencyDKK: "DKK",
	CurrencyHUF: "HUF", CurrencyRON: "RON",
}

var currencyByName = func() map[string]Currency {
	m := make(map[string]Currency, len(currencyNames))
	for c, name := range currencyNames {
		m[name] = c
	}
	return m
}()

// String returns the ISO 4217 code of the currency, or an empty string for
// values outside the known set.
func (c Currency) String() string {
	return currencyNames[c]
}

// Code returns the numeric value Steam expects in request payloads.
func (c Currency) Code() int {
	return int(c)
}

// Valid reports whether c is in the known currency set.
func (c Currency) Valid() bool {
	_, ok := currencyNames[c]
	return ok
}

// CurrencyFromCode resolves a numeric currency code.
func CurrencyFromCode(code int) (Currency, bool) {
	c := Currency(code)
	return c, c.Valid()
}

// CurrencyFromName resolves an ISO currency code such as "USD" or "eur",
// case-insensitively.
func CurrencyFromName(name string) (Currency, bool) {
	c, ok := currencyByName[strings.ToUpper(strings.TrimSpace(name))]
	return c, ok
}

// LegacyCurrency is a currency code Steam no longer accepts for live
// pricing. The values overlap Currency numerically, so legacy membership
// must be checked before concluding a code is merely unknown.
type LegacyCurrency int

const (
	LegacyCurrencySEK LegacyCurrency = 33
	LegacyCurrencyBYN LegacyCurrency = 36
	LegacyCurrencyBGN LegacyCurrency = 42
	LegacyCurrencyHRK LegacyCurrency = 43
	LegacyCurrencyCZK LegacyCurrency = 44
	LegacyCurrencyDKK LegacyCurrency = 45
	LegacyCurrencyHUF LegacyCurrency = 46
	LegacyCurrencyRON LegacyCurrency = 47
)

var legacyCurrencyNames = map[LegacyCurrency]string{
	LegacyCurrencySEK: "SEK",
	LegacyCurrencyBYN: "BYN",
	LegacyCurrencyBGN: "BGN",
	LegacyCurrencyHRK: "HRK",
	LegacyCurrencyCZK: "CZK",
	LegacyCurrencyDKK: "DKK",
	LegacyCurrencyHUF: "HUF",
	LegacyCurrencyRON: "RON",
}

// String returns the ISO 4217 code of the legacy currency.
func (c LegacyCurrency) String() string {
	return legacyCurrencyNames[c]
}

// Valid reports whether c is in the legacy set.
func (c LegacyCurrency) Valid() bool {
	_, ok := legacyCurrencyNames[c]
	return ok
}

// LegacyCurrencyFromCode resolves a numeric code against the legacy set.
func LegacyCurrencyFromCode(code int) (LegacyCurrency, bool) {
	c := LegacyCurrency(code)
	return c, c.Valid()
}

// LegacyCurrencyFromName resolves an ISO code against the legacy set,
// case-insensitively.
func LegacyCurrencyFromName(name string) (LegacyCurrency, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for c, n := range legacyCurrencyNames {
		if n == upper {
			return c, true
		}
	}
	return 0, false
}
