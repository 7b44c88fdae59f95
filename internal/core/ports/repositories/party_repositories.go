package repositories

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
)

// PartyReader defines read operations for counterparty data
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its unique identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// FindPartyByName resolves a party of the given type by exact,
	// case-insensitive name. Returns apperrors.ErrNotFound when no row matches.
	FindPartyByName(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error)

	// ListPartiesByType retrieves all active parties of one type for a branch.
	ListPartiesByType(ctx context.Context, branchID string, partyType domain.PartyType) ([]domain.Party, error)
}

// PartyWriter defines write operations for counterparty data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates mutable party fields (name, contact, address, active flag).
	UpdateParty(ctx context.Context, party domain.Party) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
