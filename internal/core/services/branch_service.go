package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

type branchService struct {
	branchRepo portsrepo.BranchRepositoryFacade
	clock      domain.Clock
}

// NewBranchService creates a new BranchService.
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade, clock domain.Clock) portssvc.BranchSvcFacade {
	return &branchService{branchRepo: branchRepo, clock: clock}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

func (s *branchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error) {
	now := s.clock.Now()
	branch := domain.Branch{
		BranchID: uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

func (s *branchService) GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	return s.branchRepo.FindBranchByID(ctx, branchID)
}

func (s *branchService) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	return s.branchRepo.ListBranches(ctx, includeInactive)
}

// UpdateBranch merges the supplied fields onto the stored branch; omitted
// fields are left untouched.
func (s *branchService) UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest, updaterUserID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Location != nil {
		branch.Location = *req.Location
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}
	branch.LastUpdatedAt = s.clock.Now()
	branch.LastUpdatedBy = updaterUserID

	if err := s.branchRepo.UpdateBranch(ctx, *branch); err != nil {
		return nil, err
	}
	return branch, nil
}
