package mapping

import (
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:  d.CurrencyID,
		Code:        d.Code,
		Name:        d.Name,
		Symbol:      d.Symbol,
		IsDefault:   d.IsDefault,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:  m.CurrencyID,
		Code:        m.Code,
		Name:        m.Name,
		Symbol:      m.Symbol,
		IsDefault:   m.IsDefault,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFinancialYear converts a domain FinancialYear to a model FinancialYear.
func ToModelFinancialYear(d domain.FinancialYear) models.FinancialYear {
	return models.FinancialYear{
		FinancialYearID: d.FinancialYearID,
		Name:            d.Name,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		IsCurrent:       d.IsCurrent,
		IsActive:        d.IsActive,
		IsClosed:        d.IsClosed,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialYear converts a model FinancialYear to a domain FinancialYear.
func ToDomainFinancialYear(m models.FinancialYear) domain.FinancialYear {
	return domain.FinancialYear{
		FinancialYearID: m.FinancialYearID,
		Name:            m.Name,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		IsCurrent:       m.IsCurrent,
		IsActive:        m.IsActive,
		IsClosed:        m.IsClosed,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
