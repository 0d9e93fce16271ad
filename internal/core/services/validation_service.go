package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
)

// validationService runs every applicable gate over a document's form state
// and reports the full outcome in one pass: field errors, date-window
// normalization, rate resolution, balance reconciliation and the duplicate
// guard. The create paths in the document services apply the same gates, so
// a validate verdict of CanSubmit matches what a subsequent create would do.
type validationService struct {
	fySvc   portssvc.FinancialYearSvcFacade
	rateSvc portssvc.ExchangeRateSvcFacade
	obSvc   portssvc.OpeningBalanceSvcFacade
}

// NewValidationService creates the document validation orchestrator.
func NewValidationService(fySvc portssvc.FinancialYearSvcFacade, rateSvc portssvc.ExchangeRateSvcFacade, obSvc portssvc.OpeningBalanceSvcFacade) portssvc.ValidationSvcFacade {
	return &validationService{
		fySvc:   fySvc,
		rateSvc: rateSvc,
		obSvc:   obSvc,
	}
}

var _ portssvc.ValidationSvcFacade = (*validationService)(nil)

// resolveRate runs rate resolution and records the outcome, downgrading a
// blocked lookup to a document error so the caller still gets the rest of the
// validation verdict.
func (s *validationService) resolveRate(ctx context.Context, result *dto.ValidationResult, currencyID string) *rules.RateResolution {
	res, err := s.rateSvc.ResolveToDefault(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateUnavailable) {
			result.AddDocumentError(err.Error())
			return nil
		}
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Error("Rate resolution failed during validation", slog.String("error", err.Error()))
		result.AddDocumentError("exchange rate could not be resolved")
		return nil
	}
	rr := dto.ToRateResolutionResponse(currencyID, res)
	result.RateResolution = &rr
	return &res
}

func (s *validationService) ValidateJournalEntry(ctx context.Context, req dto.ValidateJournalEntryRequest) (*dto.ValidationResult, error) {
	result := &dto.ValidationResult{}

	values := map[string]string{
		"description": req.Description,
		"reference":   req.Reference,
	}
	result.FieldErrors = rules.Evaluate(values, []rules.Field{
		{Name: "description", Label: "Description", Rules: []rules.Rule{rules.Required(), rules.MaxLen(255)}},
		{Name: "reference", Label: "Reference", Rules: []rules.Rule{rules.MaxLen(50)}},
	})
	if req.EntryDate == nil {
		result.FieldErrors["entryDate"] = "Entry date is required"
	}

	fy, err := s.fySvc.ResolveYear(ctx, req.FinancialYearID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		result.AddDocumentError("selected financial year does not exist")
		fy = nil
	}
	if fy != nil && fy.IsClosed {
		result.AddDocumentError("financial year " + fy.Name + " is closed")
	} else if req.EntryDate != nil {
		normalized, clamped := rules.ClampToWindow(*req.EntryDate, fy)
		result.NormalizedDate = &normalized
		result.DateClamped = clamped
	}

	s.resolveRate(ctx, result, req.CurrencyID)

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.JournalLine{
			AccountID:   l.AccountID,
			LineType:    l.LineType,
			Amount:      l.Amount,
			Description: l.Description,
		}
	}
	if err := rules.CheckJournalStructure(lines); err != nil {
		result.AddDocumentError(err.Error())
	}
	recon := rules.Reconcile(lines)
	result.Reconciliation = &recon
	if !recon.IsBalanced {
		result.AddDocumentError("journal entry is not balanced: difference " + recon.Difference.String())
	}

	result.Finalize()
	return result, nil
}

func (s *validationService) ValidateDeposit(ctx context.Context, req dto.ValidateDepositRequest) (*dto.ValidationResult, error) {
	result := &dto.ValidationResult{}

	values := map[string]string{
		"customerID": req.CustomerID,
		"accountID":  req.AccountID,
	}
	result.FieldErrors = rules.Evaluate(values, []rules.Field{
		{Name: "customerID", Label: "Customer", Rules: []rules.Rule{rules.Required()}},
		{Name: "accountID", Label: "Account", Rules: []rules.Rule{rules.Required()}},
	})
	if req.DepositDate == nil {
		result.FieldErrors["depositDate"] = "Deposit date is required"
	}
	if req.OriginalAmount == nil {
		result.FieldErrors["originalAmount"] = "Amount is required"
	} else if req.OriginalAmount.LessThanOrEqual(decimal.Zero) {
		result.FieldErrors["originalAmount"] = "Amount must be positive"
	}

	fy, err := s.fySvc.ResolveYear(ctx, req.FinancialYearID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		result.AddDocumentError("selected financial year does not exist")
		fy = nil
	}
	if fy != nil && fy.IsClosed {
		result.AddDocumentError("financial year " + fy.Name + " is closed")
	} else if req.DepositDate != nil {
		normalized, clamped := rules.ClampToWindow(*req.DepositDate, fy)
		result.NormalizedDate = &normalized
		result.DateClamped = clamped
	}

	if res := s.resolveRate(ctx, result, req.CurrencyID); res != nil && req.OriginalAmount != nil {
		equivalent := rules.EquivalentAmount(*req.OriginalAmount, res.Rate)
		result.EquivalentAmount = &equivalent
	}

	result.Finalize()
	return result, nil
}

func (s *validationService) ValidateOpeningBalance(ctx context.Context, req dto.ValidateOpeningBalanceRequest, isEdit bool) (*dto.ValidationResult, error) {
	result := &dto.ValidationResult{}

	values := map[string]string{
		"accountID":       req.AccountID,
		"financialYearID": req.FinancialYearID,
		"lineType":        string(req.LineType),
	}
	result.FieldErrors = rules.Evaluate(values, []rules.Field{
		{Name: "accountID", Label: "Account", Rules: []rules.Rule{rules.Required()}},
		{Name: "financialYearID", Label: "Financial year", Rules: []rules.Rule{rules.Required()}},
		{Name: "lineType", Label: "Balance side", Rules: []rules.Rule{rules.Required(), rules.OneOf(string(domain.Debit), string(domain.Credit))}},
	})
	if req.BalanceDate == nil {
		result.FieldErrors["balanceDate"] = "Balance date is required"
	}
	if req.Amount == nil {
		result.FieldErrors["amount"] = "Amount is required"
	} else if req.Amount.LessThanOrEqual(decimal.Zero) {
		result.FieldErrors["amount"] = "Amount must be positive"
	}

	fy, err := s.fySvc.ResolveYear(ctx, req.FinancialYearID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		result.AddDocumentError("selected financial year does not exist")
		fy = nil
	}
	if fy != nil && fy.IsClosed {
		result.AddDocumentError("financial year " + fy.Name + " is closed")
	} else if req.BalanceDate != nil {
		normalized, clamped := rules.ClampToWindow(*req.BalanceDate, fy)
		result.NormalizedDate = &normalized
		result.DateClamped = clamped
	}

	// Edits keep their existing (account, year) pair, so the guard only
	// applies to new records.
	if !isEdit && req.AccountID != "" && fy != nil {
		exists, err := s.obSvc.CheckDuplicate(ctx, req.AccountID, fy.FinancialYearID)
		if err != nil {
			return nil, err
		}
		result.DuplicateExists = exists
		if exists {
			result.AddDocumentError("an opening balance for this account already exists in " + fy.Name)
		}
	}

	result.Finalize()
	return result, nil
}

func (s *validationService) ValidateStoreRequest(ctx context.Context, req dto.ValidateStoreRequestRequest) (*dto.ValidationResult, error) {
	result := &dto.ValidationResult{}

	values := map[string]string{
		"fromStoreID": req.FromStoreID,
		"toStoreID":   req.ToStoreID,
	}
	result.FieldErrors = rules.Evaluate(values, []rules.Field{
		{Name: "fromStoreID", Label: "From store", Rules: []rules.Rule{rules.Required()}},
		{Name: "toStoreID", Label: "To store", Rules: []rules.Rule{rules.Required()}},
	})
	if req.RequestDate == nil {
		result.FieldErrors["requestDate"] = "Request date is required"
	}
	if req.FromStoreID != "" && req.FromStoreID == req.ToStoreID {
		result.FieldErrors["toStoreID"] = "To store must differ from the from store"
	}

	fy, err := s.fySvc.ResolveYear(ctx, req.FinancialYearID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		result.AddDocumentError("selected financial year does not exist")
		fy = nil
	}
	if fy != nil && fy.IsClosed {
		result.AddDocumentError("financial year " + fy.Name + " is closed")
	} else if req.RequestDate != nil {
		normalized, clamped := rules.ClampToWindow(*req.RequestDate, fy)
		result.NormalizedDate = &normalized
		result.DateClamped = clamped
	}

	result.Finalize()
	return result, nil
}
