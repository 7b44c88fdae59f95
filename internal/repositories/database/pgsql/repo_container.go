package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShiftRepo:       NewShiftRepository(dbPool),
		TransactionRepo: NewTransactionRepository(dbPool),
		PartyRepo:       NewPartyRepository(dbPool),
		BranchRepo:      NewBranchRepository(dbPool),
		ItemRepo:        NewItemRepository(dbPool),
	}
}
