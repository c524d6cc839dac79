package culture

import (
	"fmt"

	"github.com/go-playground/locales/currency"
)

// currencyCodes maps ISO 4217 codes onto go-playground currency types. The set
// covers the currencies the catalog data actually prices in; Register-ed
// locales can extend formatting but not this table.
var currencyCodes = map[string]currency.Type{
	"AED": currency.AED,
	"ARS": currency.ARS,
	"AUD": currency.AUD,
	"BHD": currency.BHD,
	"BRL": currency.BRL,
	"CAD": currency.CAD,
	"CHF": currency.CHF,
	"CLP": currency.CLP,
	"CNY": currency.CNY,
	"COP": currency.COP,
	"CZK": currency.CZK,
	"DKK": currency.DKK,
	"EUR": currency.EUR,
	"GBP": currency.GBP,
	"HKD": currency.HKD,
	"HUF": currency.HUF,
	"IDR": currency.IDR,
	"ILS": currency.ILS,
	"INR": currency.INR,
	"JPY": currency.JPY,
	"KRW": currency.KRW,
	"KWD": currency.KWD,
	"MXN": currency.MXN,
	"MYR": currency.MYR,
	"NOK": currency.NOK,
	"NZD": currency.NZD,
	"OMR": currency.OMR,
	"PHP": currency.PHP,
	"PLN": currency.PLN,
	"RUB": currency.RUB,
	"SAR": currency.SAR,
	"SEK": currency.SEK,
	"SGD": currency.SGD,
	"THB": currency.THB,
	"TND": currency.TND,
	"TRY": currency.TRY,
	"TWD": currency.TWD,
	"USD": currency.USD,
	"VND": currency.VND,
	"ZAR": currency.ZAR,
}

// zeroDecimalCurrencies lists codes whose minor unit is the whole unit.
var zeroDecimalCurrencies = map[string]struct{}{
	"CLP": {},
	"JPY": {},
	"KRW": {},
	"VND": {},
}

// threeDecimalCurrencies lists codes with three fraction digits by default.
var threeDecimalCurrencies = map[string]struct{}{
	"BHD": {},
	"KWD": {},
	"OMR": {},
	"TND": {},
}

// FormatCurrency renders v as money under locale. precision < 0 uses the
// currency's default fraction digits; otherwise it sets both the minimum and
// maximum. Unknown codes are an error the engine surfaces on the node.
func (p *Provider) FormatCurrency(locale string, v float64, code string, precision int) (string, error) {
	kind, ok := currencyCodes[code]
	if !ok {
		return "", fmt.Errorf("culture: unsupported currency code %q", code)
	}
	if precision < 0 {
		precision = defaultFractionDigits(code)
	}
	return p.Resolve(locale).FmtCurrency(v, uint64(precision), kind), nil
}

func defaultFractionDigits(code string) int {
	if _, ok := zeroDecimalCurrencies[code]; ok {
		return 0
	}
	if _, ok := threeDecimalCurrencies[code]; ok {
		return 3
	}
	return 2
}
