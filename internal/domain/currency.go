package domain

import (
	"golang.org/x/text/currency"
	"strings"
)

// DefaultCurrency is used whenever a requested currency code is not a known ISO 4217 code.
var DefaultCurrency = currency.USD

type Currency struct {
	Unit currency.Unit
}

func NewCurrency(unit currency.Unit) Currency {
	return Currency{Unit: unit}
}

func (c Currency) Code() string {
	return c.Unit.String()
}

// CurrencyResolution reports which currency a requested code resolved to.
// Fallback is set when Requested was not recognized and DefaultCurrency was used instead.
type CurrencyResolution struct {
	Currency  Currency
	Requested string
	Fallback  bool
}

func ResolveCurrency(code string) CurrencyResolution {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return CurrencyResolution{
			Currency:  NewCurrency(DefaultCurrency),
			Requested: code,
			Fallback:  true,
		}
	}

	return CurrencyResolution{
		Currency:  NewCurrency(unit),
		Requested: code,
	}
}
