package rules_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mocustoms/railway-ledger/internal/core/rules"
)

func TestEvaluateFirstFailingRuleWins(t *testing.T) {
	fields := []rules.Field{
		{Name: "customerID", Label: "Customer", Rules: []rules.Rule{rules.Required()}},
		{Name: "reference", Label: "Reference", Rules: []rules.Rule{rules.Required(), rules.MinLen(3), rules.MaxLen(20)}},
		{Name: "amount", Label: "Amount", Rules: []rules.Rule{rules.Required(), rules.MinAmount(decimal.Zero)}},
		{Name: "lineType", Label: "Type", Rules: []rules.Rule{rules.Required(), rules.OneOf("DEBIT", "CREDIT")}},
	}

	errs := rules.Evaluate(map[string]string{
		"customerID": "",
		"reference":  "ab",
		"amount":     "abc",
		"lineType":   "BOTH",
	}, fields)

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "Customer is required", errs["customerID"])
	assert.Equal(t, "Reference must be at least 3 characters", errs["reference"])
	assert.Equal(t, "Amount must be a number", errs["amount"])
	assert.Equal(t, "Type must be one of: DEBIT, CREDIT", errs["lineType"])
}

func TestEvaluatePassing(t *testing.T) {
	fields := []rules.Field{
		{Name: "accountID", Rules: []rules.Rule{rules.Required()}},
		{Name: "amount", Rules: []rules.Rule{rules.MinAmount(decimal.NewFromInt(1))}},
	}

	errs := rules.Evaluate(map[string]string{
		"accountID": "acc-1",
		"amount":    "1.00",
	}, fields)

	assert.False(t, errs.HasErrors())
	assert.Empty(t, errs)
}

func TestRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    rules.Rule
		value   string
		wantErr bool
	}{
		{"required passes", rules.Required(), "x", false},
		{"required fails on whitespace", rules.Required(), "   ", true},
		{"min length boundary", rules.MinLen(3), "abc", false},
		{"max length boundary", rules.MaxLen(3), "abcd", true},
		{"min amount boundary", rules.MinAmount(decimal.NewFromInt(10)), "10", false},
		{"min amount below", rules.MinAmount(decimal.NewFromInt(10)), "9.99", true},
		{"one of member", rules.OneOf("A", "B"), "B", false},
		{"one of non-member", rules.OneOf("A", "B"), "C", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule("field", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
