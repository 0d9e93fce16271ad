package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// BalanceTolerance is the maximum permitted absolute difference between total
// debits and total credits for an entry to count as balanced.
var BalanceTolerance = decimal.New(1, -2) // 0.01

// MinJournalLines is the structural minimum line count for a journal entry.
const MinJournalLines = 2

// ReconcileResult summarises the debit/credit totals of a set of lines.
type ReconcileResult struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Difference  decimal.Decimal `json:"difference"`
	IsBalanced  bool            `json:"isBalanced"`
}

// Reconcile partitions lines by type, sums each side and checks the absolute
// difference against BalanceTolerance. It never fails: structural problems
// (line count, distinct accounts, non-positive amounts) are checked by
// CheckJournalStructure.
func Reconcile(lines []domain.JournalLine) ReconcileResult {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		if line.LineType == domain.Debit {
			totalDebit = totalDebit.Add(line.Amount)
		} else {
			totalCredit = totalCredit.Add(line.Amount)
		}
	}
	diff := totalDebit.Sub(totalCredit).Abs()
	return ReconcileResult{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  diff,
		IsBalanced:  diff.LessThan(BalanceTolerance),
	}
}

// CheckJournalStructure enforces the structural rules that are independent of
// balance: at least two lines, at least two distinct accounts, every line
// bound to an account with a positive amount.
func CheckJournalStructure(lines []domain.JournalLine) error {
	if len(lines) < MinJournalLines {
		return fmt.Errorf("%w: journal entry must have at least %d lines", apperrors.ErrValidation, MinJournalLines)
	}
	accounts := make(map[string]struct{}, len(lines))
	for i, line := range lines {
		if line.AccountID == "" {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		}
		if line.LineType != domain.Debit && line.LineType != domain.Credit {
			return fmt.Errorf("%w: line %d has invalid type %q", apperrors.ErrValidation, i+1, line.LineType)
		}
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: line %d amount must be positive", apperrors.ErrValidation, i+1)
		}
		accounts[line.AccountID] = struct{}{}
	}
	if len(accounts) < 2 {
		return fmt.Errorf("%w: journal entry must affect at least two different accounts", apperrors.ErrValidation)
	}
	return nil
}

// CheckBalanced converts an unbalanced reconcile result into an error.
func CheckBalanced(res ReconcileResult) error {
	if res.IsBalanced {
		return nil
	}
	return fmt.Errorf("%w: debits %s, credits %s, difference %s",
		apperrors.ErrUnbalanced,
		res.TotalDebit.String(), res.TotalCredit.String(), res.Difference.String())
}
