package repositories

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
)

// BranchReader defines read operations for branch data
type BranchReader interface {
	// FindBranchByID retrieves a specific branch by its ID.
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches retrieves all branches, optionally including inactive ones.
	ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error)
}

// BranchWriter defines write operations for branch data
type BranchWriter interface {
	// SaveBranch persists a new branch.
	SaveBranch(ctx context.Context, branch domain.Branch) error

	// UpdateBranch updates mutable branch fields (name, location, active flag).
	UpdateBranch(ctx context.Context, branch domain.Branch) error
}

// BranchRepositoryFacade combines all branch-related repository interfaces
type BranchRepositoryFacade interface {
	BranchReader
	BranchWriter
}
