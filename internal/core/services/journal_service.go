package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
)

const defaultJournalPageSize = 20

// journalService provides journal entry operations. Every create runs the
// same gates the validation service exposes: structural checks, debit/credit
// reconciliation and the date-window check, in that order.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryWithTx
	accountSvc  portssvc.AccountSvcFacade
	fySvc       portssvc.FinancialYearSvcFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountSvc portssvc.AccountSvcFacade, fySvc portssvc.FinancialYearSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		fySvc:       fySvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func linesFromRequest(entryID string, reqLines []dto.JournalLineRequest, userID string, now time.Time) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(reqLines))
	for i, l := range reqLines {
		lines[i] = domain.JournalLine{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entryID,
			AccountID:      l.AccountID,
			LineType:       l.LineType,
			Amount:         l.Amount,
			Description:    l.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return lines
}

func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	entryID := uuid.NewString()

	lines := linesFromRequest(entryID, req.Lines, creatorUserID, now)

	if err := rules.CheckJournalStructure(lines); err != nil {
		return nil, err
	}

	recon := rules.Reconcile(lines)
	if err := rules.CheckBalanced(recon); err != nil {
		logger.Warn("Unbalanced journal entry rejected",
			slog.String("total_debit", recon.TotalDebit.String()),
			slog.String("total_credit", recon.TotalCredit.String()),
			slog.String("difference", recon.Difference.String()))
		return nil, err
	}

	if err := s.fySvc.ValidateDocumentDate(ctx, req.EntryDate, req.FinancialYearID); err != nil {
		return nil, err
	}

	// Every referenced account must exist and be active.
	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; !ok {
			seen[l.AccountID] = struct{}{}
			accountIDs = append(accountIDs, l.AccountID)
		}
	}
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, apperrors.NewValidationError(fmt.Sprintf("account %s is inactive", acc.Code))
		}
	}

	entry := domain.JournalEntry{
		JournalEntryID:  entryID,
		EntryDate:       req.EntryDate,
		FinancialYearID: req.FinancialYearID,
		CurrencyID:      req.CurrencyID,
		Reference:       req.Reference,
		Description:     req.Description,
		Status:          domain.Posted,
		TotalDebit:      recon.TotalDebit,
		TotalCredit:     recon.TotalCredit,
		Lines:           lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry, lines); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created", slog.String("journal_entry_id", entryID),
		slog.String("total_debit", recon.TotalDebit.String()))
	return &entry, nil
}

func (s *journalService) GetJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultJournalPageSize
	}
	entries, next, err := s.journalRepo.ListJournalEntries(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	out := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return &dto.ListJournalEntriesResponse{Entries: out, NextToken: next}, nil
}

func (s *journalService) UpdateJournalEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.Cancelled {
		return nil, apperrors.NewValidationError("cancelled journal entries cannot be updated")
	}

	if req.EntryDate != nil {
		if err := s.fySvc.ValidateDocumentDate(ctx, *req.EntryDate, entry.FinancialYearID); err != nil {
			return nil, err
		}
		entry.EntryDate = *req.EntryDate
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = updaterUserID

	if err := s.journalRepo.UpdateJournalEntry(ctx, *entry); err != nil {
		logger.Error("Failed to update journal entry", slog.String("error", err.Error()), slog.String("journal_entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	logger.Info("Journal entry updated", slog.String("journal_entry_id", entryID))
	return entry, nil
}

func (s *journalService) CancelJournalEntry(ctx context.Context, entryID string, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.Status == domain.Cancelled {
		return apperrors.NewValidationError("journal entry is already cancelled")
	}

	if err := s.journalRepo.UpdateJournalEntryStatus(ctx, entryID, domain.Cancelled, updaterUserID, time.Now()); err != nil {
		return fmt.Errorf("failed to cancel journal entry: %w", err)
	}

	logger.Info("Journal entry cancelled", slog.String("journal_entry_id", entryID))
	return nil
}
