package rules_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
)

func line(account string, lt domain.LineType, amount string) domain.JournalLine {
	return domain.JournalLine{
		AccountID: account,
		LineType:  lt,
		Amount:    decimal.RequireFromString(amount),
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name        string
		lines       []domain.JournalLine
		wantDebit   string
		wantCredit  string
		wantDiff    string
		wantBalance bool
	}{
		{
			name: "exactly balanced",
			lines: []domain.JournalLine{
				line("a", domain.Debit, "100.00"),
				line("b", domain.Credit, "100.00"),
			},
			wantDebit:   "100",
			wantCredit:  "100",
			wantDiff:    "0",
			wantBalance: true,
		},
		{
			name: "within tolerance",
			lines: []domain.JournalLine{
				line("a", domain.Debit, "100.00"),
				line("b", domain.Credit, "99.995"),
			},
			wantDebit:   "100",
			wantCredit:  "99.995",
			wantDiff:    "0.005",
			wantBalance: true,
		},
		{
			name: "outside tolerance",
			lines: []domain.JournalLine{
				line("a", domain.Debit, "100.00"),
				line("b", domain.Credit, "99.98"),
			},
			wantDebit:   "100",
			wantCredit:  "99.98",
			wantDiff:    "0.02",
			wantBalance: false,
		},
		{
			name: "difference equal to tolerance is unbalanced",
			lines: []domain.JournalLine{
				line("a", domain.Debit, "100.00"),
				line("b", domain.Credit, "99.99"),
			},
			wantDebit:   "100",
			wantCredit:  "99.99",
			wantDiff:    "0.01",
			wantBalance: false,
		},
		{
			name: "multiple lines per side",
			lines: []domain.JournalLine{
				line("a", domain.Debit, "60"),
				line("b", domain.Debit, "40"),
				line("c", domain.Credit, "70"),
				line("d", domain.Credit, "30"),
			},
			wantDebit:   "100",
			wantCredit:  "100",
			wantDiff:    "0",
			wantBalance: true,
		},
		{
			name:        "empty lines",
			lines:       nil,
			wantDebit:   "0",
			wantCredit:  "0",
			wantDiff:    "0",
			wantBalance: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := rules.Reconcile(tt.lines)
			assert.Equal(t, tt.wantDebit, res.TotalDebit.String())
			assert.Equal(t, tt.wantCredit, res.TotalCredit.String())
			assert.Equal(t, tt.wantDiff, res.Difference.String())
			assert.Equal(t, tt.wantBalance, res.IsBalanced)
		})
	}
}

func TestCheckBalanced(t *testing.T) {
	balanced := rules.Reconcile([]domain.JournalLine{
		line("a", domain.Debit, "50"),
		line("b", domain.Credit, "50"),
	})
	assert.NoError(t, rules.CheckBalanced(balanced))

	unbalanced := rules.Reconcile([]domain.JournalLine{
		line("a", domain.Debit, "50"),
		line("b", domain.Credit, "40"),
	})
	err := rules.CheckBalanced(unbalanced)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
	assert.Contains(t, err.Error(), "difference 10")
}

func TestCheckJournalStructure(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr string
	}{
		{
			name: "valid",
			lines: []domain.JournalLine{
				line("a", domain.Debit, "10"),
				line("b", domain.Credit, "10"),
			},
		},
		{
			name:    "fewer than two lines",
			lines:   []domain.JournalLine{line("a", domain.Debit, "10")},
			wantErr: "at least 2 lines",
		},
		{
			name: "balanced but single account still rejected",
			lines: []domain.JournalLine{
				line("a", domain.Debit, "10"),
				line("a", domain.Credit, "10"),
			},
			wantErr: "two different accounts",
		},
		{
			name: "missing account",
			lines: []domain.JournalLine{
				line("", domain.Debit, "10"),
				line("b", domain.Credit, "10"),
			},
			wantErr: "no account",
		},
		{
			name: "non-positive amount",
			lines: []domain.JournalLine{
				line("a", domain.Debit, "0"),
				line("b", domain.Credit, "0"),
			},
			wantErr: "must be positive",
		},
		{
			name: "invalid line type",
			lines: []domain.JournalLine{
				{AccountID: "a", LineType: "BOTH", Amount: decimal.NewFromInt(10)},
				line("b", domain.Credit, "10"),
			},
			wantErr: "invalid type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.CheckJournalStructure(tt.lines)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
