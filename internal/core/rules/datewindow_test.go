package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
)

func fy2026() *domain.FinancialYear {
	return &domain.FinancialYear{
		FinancialYearID: "fy-2026",
		Name:            "FY2026",
		StartDate:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		IsCurrent:       true,
		IsActive:        true,
	}
}

func TestCheckDateWindow(t *testing.T) {
	fy := fy2026()

	assert.NoError(t, rules.CheckDateWindow(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), fy))
	// Window bounds are inclusive
	assert.NoError(t, rules.CheckDateWindow(fy.StartDate, fy))
	assert.NoError(t, rules.CheckDateWindow(fy.EndDate, fy))

	err := rules.CheckDateWindow(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), fy)
	assert.ErrorIs(t, err, apperrors.ErrDateOutOfWindow)
	assert.Contains(t, err.Error(), "FY2026")
	assert.Contains(t, err.Error(), "2025-07-01")
	assert.Contains(t, err.Error(), "2026-06-30")

	err = rules.CheckDateWindow(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), fy)
	assert.ErrorIs(t, err, apperrors.ErrDateOutOfWindow)
}

func TestCheckDateWindowTimeOfDayOnBoundary(t *testing.T) {
	fy := fy2026()

	// Timestamps anywhere on the boundary days are still inside the window.
	assert.NoError(t, rules.CheckDateWindow(time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC), fy))
	assert.NoError(t, rules.CheckDateWindow(time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC), fy))
	assert.NoError(t, rules.CheckDateWindow(time.Date(2025, 7, 1, 8, 30, 0, 0, time.UTC), fy))

	err := rules.CheckDateWindow(time.Date(2026, 7, 1, 0, 0, 1, 0, time.UTC), fy)
	assert.ErrorIs(t, err, apperrors.ErrDateOutOfWindow)
}

func TestCheckDateWindowNoYearIsNoop(t *testing.T) {
	assert.NoError(t, rules.CheckDateWindow(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), nil))
}

func TestCheckDateWindowClosedYear(t *testing.T) {
	fy := fy2026()
	fy.IsClosed = true
	err := rules.CheckDateWindow(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), fy)
	assert.ErrorIs(t, err, apperrors.ErrYearClosed)
}

func TestClampToWindow(t *testing.T) {
	fy := fy2026()

	inRange := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	got, clamped := rules.ClampToWindow(inRange, fy)
	assert.False(t, clamped)
	assert.Equal(t, inRange, got)

	outOfRange := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got, clamped = rules.ClampToWindow(outOfRange, fy)
	assert.True(t, clamped)
	assert.Equal(t, fy.StartDate, got)

	got, clamped = rules.ClampToWindow(outOfRange, nil)
	assert.False(t, clamped)
	assert.Equal(t, outOfRange, got)

	// A timestamp on the last day of the year must not be clamped away.
	lastDay := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)
	got, clamped = rules.ClampToWindow(lastDay, fy)
	assert.False(t, clamped)
	assert.Equal(t, lastDay, got)
}
