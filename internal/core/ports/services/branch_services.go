package services

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

// BranchSvcFacade defines CRUD operations for branches.
type BranchSvcFacade interface {
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error)
	GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error)
	UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest, updaterUserID string) (*domain.Branch, error)
}
