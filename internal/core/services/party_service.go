package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

type partyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
	clock     domain.Clock
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, clock domain.Clock) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo, clock: clock}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	now := s.clock.Now()
	party := domain.Party{
		PartyID:  uuid.NewString(),
		Type:     domain.PartyType(req.Type),
		Name:     strings.TrimSpace(req.Name),
		Contact:  req.Contact,
		Address:  req.Address,
		BranchID: req.BranchID,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if party.Name == "" {
		return nil, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
	}
	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		return nil, err
	}
	return &party, nil
}

func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

func (s *partyService) FindPartyByName(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
	}
	return s.partyRepo.FindPartyByName(ctx, partyType, name)
}

func (s *partyService) ListParties(ctx context.Context, branchID string, partyType domain.PartyType) ([]domain.Party, error) {
	return s.partyRepo.ListPartiesByType(ctx, branchID, partyType)
}

// UpdateParty merges the supplied fields onto the stored party; omitted fields
// are left untouched.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		party.Name = strings.TrimSpace(*req.Name)
	}
	if req.Contact != nil {
		party.Contact = *req.Contact
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.IsActive != nil {
		party.IsActive = *req.IsActive
	}
	party.LastUpdatedAt = s.clock.Now()
	party.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		return nil, err
	}
	return party, nil
}
