package rules_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
)

var baseCurrency = domain.Currency{CurrencyID: "cur-base", Code: "ETB", IsDefault: true}

func rate(id, from, to, value string) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: id,
		FromCurrencyID: from,
		ToCurrencyID:   to,
		Rate:           decimal.RequireFromString(value),
		IsActive:       true,
	}
}

func TestResolveRate(t *testing.T) {
	active := []domain.ExchangeRate{
		rate("rate-usd", "cur-usd", "cur-base", "2500"),
		rate("rate-eur", "cur-eur", "cur-base", "2700.50"),
		rate("rate-bad", "cur-gbp", "cur-base", "0"),
		// Inverse direction must never match
		rate("rate-inverse", "cur-base", "cur-usd", "0.0004"),
	}

	tests := []struct {
		name         string
		selected     string
		wantRate     string
		wantRateID   string
		wantFallback bool
	}{
		{
			name:     "default currency resolves to identity",
			selected: "cur-base",
			wantRate: "1",
		},
		{
			name:     "unset currency resolves to identity",
			selected: "",
			wantRate: "1",
		},
		{
			name:       "exact pair match",
			selected:   "cur-usd",
			wantRate:   "2500",
			wantRateID: "rate-usd",
		},
		{
			name:       "decimal rate match",
			selected:   "cur-eur",
			wantRate:   "2700.5",
			wantRateID: "rate-eur",
		},
		{
			name:         "non-positive rate falls back",
			selected:     "cur-gbp",
			wantRate:     "1",
			wantFallback: true,
		},
		{
			name:         "unknown pair falls back",
			selected:     "cur-jpy",
			wantRate:     "1",
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := rules.ResolveRate(tt.selected, baseCurrency, active)
			assert.Equal(t, tt.wantRate, res.Rate.String())
			assert.Equal(t, tt.wantRateID, res.RateID)
			assert.Equal(t, tt.wantFallback, res.Fallback)
		})
	}
}

func TestResolveRateIdempotentForDefault(t *testing.T) {
	// Resolving the default currency against itself must always be identity,
	// even when a bogus self-referencing rate exists in the active set.
	active := []domain.ExchangeRate{rate("rate-self", "cur-base", "cur-base", "42")}
	res := rules.ResolveRate("cur-base", baseCurrency, active)
	assert.Equal(t, "1", res.Rate.String())
	assert.Empty(t, res.RateID)
	assert.False(t, res.Fallback)
}

func TestEquivalentAmount(t *testing.T) {
	amount := decimal.NewFromInt(200)
	fx := decimal.NewFromInt(2500)
	assert.Equal(t, "500000", rules.EquivalentAmount(amount, fx).String())

	// Round trip through the inverse path
	back := rules.AmountFromEquivalent(rules.EquivalentAmount(amount, fx), fx)
	assert.True(t, back.Equal(amount))

	// Zero rate never divides
	assert.True(t, rules.AmountFromEquivalent(decimal.NewFromInt(100), decimal.Zero).IsZero())
}
