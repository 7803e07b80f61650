// Package money описывает денежные суммы в минимальных единицах валюты
// и их сериализуемые снимки (snapshot) для ответов API.
package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// Currency - описание валюты: код ISO 4217, основание и экспонента минимальной единицы.
type Currency struct {
	Code     string `json:"code"`
	Base     int    `json:"base"`
	Exponent int    `json:"exponent"`
}

// USD - валюта витрины. 1 доллар = 10^2 центов.
var USD = Currency{Code: "USD", Base: 10, Exponent: 2}

// CurrencyFromCode строит Currency по данным ISO 4217 (golang.org/x/text).
func CurrencyFromCode(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, fmt.Errorf("unknown currency %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return Currency{Code: unit.String(), Base: 10, Exponent: scale}, nil
}

// Snapshot - сериализуемое представление суммы и валюты.
type Snapshot struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
	Scale    int      `json:"scale"`
}

// ToSnapshot - каноничный снимок суммы amount (в минимальных единицах) в валюте cur.
func ToSnapshot(amount int64, cur Currency) Snapshot {
	return Snapshot{Amount: amount, Currency: cur, Scale: cur.Exponent}
}

// Decimal форматирует сумму как десятичную строку, например 1999 USD -> "19.99".
// Для оснований, отличных от 10, возвращает сумму в минимальных единицах.
func (s Snapshot) Decimal() string {
	if s.Currency.Base != 10 || s.Scale <= 0 {
		return fmt.Sprintf("%d", s.Amount)
	}

	sign := ""
	amount := s.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%0*d", s.Scale+1, amount)
	cut := len(digits) - s.Scale
	return sign + digits[:cut] + "." + digits[cut:]
}

// String - сумма с кодом валюты, например "19.99 USD"
func (s Snapshot) String() string {
	return strings.TrimSpace(s.Decimal() + " " + s.Currency.Code)
}
