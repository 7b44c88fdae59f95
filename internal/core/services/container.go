package services

import (
	"github.com/scrapline/junkshop_backoffice/internal/cache"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
)

// NewServiceContainer wires every application service from the repository
// provider, the injected clock and the active-shift cache.
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock domain.Clock, shiftCache cache.ActiveShiftCache) *portssvc.ServiceContainer {
	shiftSvc := NewShiftService(repos.ShiftRepo, clock, shiftCache)
	partySvc := NewPartyService(repos.PartyRepo, clock)

	return &portssvc.ServiceContainer{
		Shift:   shiftSvc,
		Ledger:  NewLedgerService(repos.TransactionRepo, shiftSvc, partySvc, clock),
		Balance: NewBalanceService(repos.ShiftRepo, repos.TransactionRepo),
		Branch:  NewBranchService(repos.BranchRepo, clock),
		Party:   partySvc,
		Item:    NewItemService(repos.ItemRepo, clock),
	}
}
