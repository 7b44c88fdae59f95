package dto

import "github.com/scrapline/junkshop_backoffice/internal/core/domain"

// CreateBranchRequest defines the payload for creating a branch.
type CreateBranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// UpdateBranchRequest defines the partial-update payload for a branch.
// Pointer fields distinguish omitted fields from zero values.
type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	IsActive *bool   `json:"isActive"`
}

// BranchResponse defines the data returned for a branch.
type BranchResponse struct {
	BranchID string `json:"branchID"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`
}

// ListBranchesResponse wraps the list of branches.
type ListBranchesResponse struct {
	Branches []BranchResponse `json:"branches"`
}

// ToBranchResponse converts a domain.Branch to BranchResponse DTO.
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID: b.BranchID,
		Name:     b.Name,
		Location: b.Location,
		IsActive: b.IsActive,
	}
}

// ToListBranchesResponse converts a slice of domain.Branch to ListBranchesResponse.
func ToListBranchesResponse(branches []domain.Branch) ListBranchesResponse {
	responses := make([]BranchResponse, len(branches))
	for i, b := range branches {
		responses[i] = ToBranchResponse(&b)
	}
	return ListBranchesResponse{Branches: responses}
}
