package mapping

import (
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/models"
)

// ToModelOpeningBalance converts a domain OpeningBalance to its model form.
func ToModelOpeningBalance(d domain.OpeningBalance) models.OpeningBalance {
	return models.OpeningBalance{
		OpeningBalanceID: d.OpeningBalanceID,
		AccountID:        d.AccountID,
		FinancialYearID:  d.FinancialYearID,
		BalanceDate:      d.BalanceDate,
		LineType:         string(d.LineType),
		Amount:           d.Amount,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOpeningBalance converts a model OpeningBalance to its domain form.
func ToDomainOpeningBalance(m models.OpeningBalance) domain.OpeningBalance {
	return domain.OpeningBalance{
		OpeningBalanceID: m.OpeningBalanceID,
		AccountID:        m.AccountID,
		FinancialYearID:  m.FinancialYearID,
		BalanceDate:      m.BalanceDate,
		LineType:         domain.LineType(m.LineType),
		Amount:           m.Amount,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDeposit converts a domain CustomerDeposit to its model form.
func ToModelDeposit(d domain.CustomerDeposit) models.CustomerDeposit {
	var rateID *string
	if d.ExchangeRateID != "" {
		r := d.ExchangeRateID
		rateID = &r
	}
	return models.CustomerDeposit{
		DepositID:        d.DepositID,
		CustomerID:       d.CustomerID,
		AccountID:        d.AccountID,
		FinancialYearID:  d.FinancialYearID,
		CurrencyID:       d.CurrencyID,
		ExchangeRateID:   rateID,
		ExchangeRate:     d.ExchangeRate,
		OriginalAmount:   d.OriginalAmount,
		EquivalentAmount: d.EquivalentAmount,
		DepositDate:      d.DepositDate,
		Reference:        d.Reference,
		Notes:            d.Notes,
		Status:           string(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeposit converts a model CustomerDeposit to its domain form.
func ToDomainDeposit(m models.CustomerDeposit) domain.CustomerDeposit {
	rateID := ""
	if m.ExchangeRateID != nil {
		rateID = *m.ExchangeRateID
	}
	return domain.CustomerDeposit{
		DepositID:        m.DepositID,
		CustomerID:       m.CustomerID,
		AccountID:        m.AccountID,
		FinancialYearID:  m.FinancialYearID,
		CurrencyID:       m.CurrencyID,
		ExchangeRateID:   rateID,
		ExchangeRate:     m.ExchangeRate,
		OriginalAmount:   m.OriginalAmount,
		EquivalentAmount: m.EquivalentAmount,
		DepositDate:      m.DepositDate,
		Reference:        m.Reference,
		Notes:            m.Notes,
		Status:           domain.DocumentStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStoreRequest converts a domain StoreRequest to its model form.
func ToModelStoreRequest(d domain.StoreRequest) models.StoreRequest {
	return models.StoreRequest{
		StoreRequestID:  d.StoreRequestID,
		FromStoreID:     d.FromStoreID,
		ToStoreID:       d.ToStoreID,
		FinancialYearID: d.FinancialYearID,
		RequestDate:     d.RequestDate,
		Reference:       d.Reference,
		Notes:           d.Notes,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStoreRequest converts a model StoreRequest to its domain form.
func ToDomainStoreRequest(m models.StoreRequest) domain.StoreRequest {
	return domain.StoreRequest{
		StoreRequestID:  m.StoreRequestID,
		FromStoreID:     m.FromStoreID,
		ToStoreID:       m.ToStoreID,
		FinancialYearID: m.FinancialYearID,
		RequestDate:     m.RequestDate,
		Reference:       m.Reference,
		Notes:           m.Notes,
		Status:          domain.StoreRequestStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPreference converts a model UserPreference to its domain form.
func ToDomainPreference(m models.UserPreference) domain.UserPreference {
	return domain.UserPreference{
		UserID:      m.UserID,
		Key:         m.Key,
		Value:       m.Value,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPreference converts a domain UserPreference to its model form.
func ToModelPreference(d domain.UserPreference) models.UserPreference {
	return models.UserPreference{
		UserID:      d.UserID,
		Key:         d.Key,
		Value:       d.Value,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
