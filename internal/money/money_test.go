package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnapshot_USD(t *testing.T) {
	s := ToSnapshot(1999, USD)

	assert.Equal(t, int64(1999), s.Amount)
	assert.Equal(t, USD, s.Currency)
	assert.Equal(t, 2, s.Scale)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":1999,"currency":{"code":"USD","base":10,"exponent":2},"scale":2}`, string(raw))
}

func TestCurrencyFromCode(t *testing.T) {
	usd, err := CurrencyFromCode("USD")
	require.NoError(t, err)
	assert.Equal(t, USD, usd)

	jpy, err := CurrencyFromCode("JPY")
	require.NoError(t, err)
	assert.Equal(t, 0, jpy.Exponent)

	_, err = CurrencyFromCode("XXY")
	assert.Error(t, err)
}

func TestSnapshot_Decimal(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{1999, "19.99"},
		{5, "0.05"},
		{0, "0.00"},
		{100, "1.00"},
		{-250, "-2.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToSnapshot(tt.amount, USD).Decimal(), "amount %d", tt.amount)
	}

	jpy := Currency{Code: "JPY", Base: 10, Exponent: 0}
	assert.Equal(t, "1500", ToSnapshot(1500, jpy).Decimal())
	assert.Equal(t, "19.99 USD", ToSnapshot(1999, USD).String())
}
