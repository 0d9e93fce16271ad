package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:       newPgxCurrencyRepository(dbPool),
		FinancialYearRepo:  newPgxFinancialYearRepository(dbPool),
		ExchangeRateRepo:   newPgxExchangeRateRepository(dbPool),
		AccountRepo:        newPgxAccountRepository(dbPool),
		JournalRepo:        newPgxJournalRepository(dbPool),
		OpeningBalanceRepo: newPgxOpeningBalanceRepository(dbPool),
		DepositRepo:        newPgxDepositRepository(dbPool),
		StoreRequestRepo:   newPgxStoreRequestRepository(dbPool),
		PreferenceRepo:     newPgxPreferenceRepository(dbPool),
	}
}
