package rules

import (
	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// RateResolution is the outcome of resolving a currency against the default
// currency. RateID is empty for the identity rate and for fallbacks.
type RateResolution struct {
	Rate     decimal.Decimal `json:"rate"`
	RateID   string          `json:"rateID,omitempty"`
	Fallback bool            `json:"fallback"` // True when no usable pair rate existed
}

// ResolveRate resolves the conversion rate from the selected currency into the
// default currency against a set of active rates.
//
// An unset selection or the default currency itself resolves to the identity
// rate. Otherwise the exact pair (from=selected, to=default) is searched; a
// found rate is only used when it is positive. Anything else falls back to the
// identity rate with Fallback=true so the caller's lookup policy can decide
// whether that is acceptable.
func ResolveRate(selectedCurrencyID string, defaultCurrency domain.Currency, activeRates []domain.ExchangeRate) RateResolution {
	one := decimal.NewFromInt(1)
	if selectedCurrencyID == "" || selectedCurrencyID == defaultCurrency.CurrencyID {
		return RateResolution{Rate: one}
	}
	for _, r := range activeRates {
		if r.FromCurrencyID == selectedCurrencyID && r.ToCurrencyID == defaultCurrency.CurrencyID {
			if r.Rate.GreaterThan(decimal.Zero) {
				return RateResolution{Rate: r.Rate, RateID: r.ExchangeRateID}
			}
		}
	}
	return RateResolution{Rate: one, Fallback: true}
}

// EquivalentAmount converts an amount into the default currency.
func EquivalentAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// AmountFromEquivalent recovers the original-currency amount from an
// equivalent amount and a rate. Used when the equivalent side is edited
// directly while the rate is held. A zero rate yields zero.
func AmountFromEquivalent(equivalent, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return equivalent.Div(rate)
}
