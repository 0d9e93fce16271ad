package rules

import (
	"fmt"
	"time"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

const dateLayout = "2006-01-02"

// CheckDateWindow validates that a document date falls inside the selected
// financial year's window. A nil year makes the check a no-op: documents
// without a resolvable year are not bound to any window.
func CheckDateWindow(date time.Time, fy *domain.FinancialYear) error {
	if fy == nil {
		return nil
	}
	if fy.IsClosed {
		return fmt.Errorf("%w: %s", apperrors.ErrYearClosed, fy.Name)
	}
	if !fy.Contains(date) {
		return fmt.Errorf("%w: date %s must be between %s and %s for %s",
			apperrors.ErrDateOutOfWindow,
			date.Format(dateLayout),
			fy.StartDate.Format(dateLayout),
			fy.EndDate.Format(dateLayout),
			fy.Name)
	}
	return nil
}

// ClampToWindow resets a date that falls outside the financial year window to
// the window start. This is the corrective auto-fix applied when the selected
// year changes under an already-entered date: the document never keeps a date
// outside the active year. The returned bool reports whether clamping happened.
func ClampToWindow(date time.Time, fy *domain.FinancialYear) (time.Time, bool) {
	if fy == nil || fy.Contains(date) {
		return date, false
	}
	return fy.StartDate, true
}
