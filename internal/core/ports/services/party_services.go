package services

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

// PartySvcFacade defines CRUD and lookup operations for buyers, sellers and employees.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// FindPartyByName resolves a party by exact, case-insensitive name; used by
	// loan and repayment recording.
	FindPartyByName(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error)

	ListParties(ctx context.Context, branchID string, partyType domain.PartyType) ([]domain.Party, error)
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)
}
