package dto

import "github.com/scrapline/junkshop_backoffice/internal/core/domain"

// CreatePartyRequest defines the payload for creating a buyer, seller or employee.
type CreatePartyRequest struct {
	Type     string `json:"type" binding:"required,oneof=buyer seller employee"`
	Name     string `json:"name" binding:"required"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	BranchID string `json:"branchID" binding:"required"`
}

// UpdatePartyRequest defines the partial-update payload for a party.
type UpdatePartyRequest struct {
	Name     *string `json:"name"`
	Contact  *string `json:"contact"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID  string `json:"partyID"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	BranchID string `json:"branchID"`
	IsActive bool   `json:"isActive"`
}

// ListPartiesResponse wraps the list of parties of one type.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:  p.PartyID,
		Type:     string(p.Type),
		Name:     p.Name,
		Contact:  p.Contact,
		Address:  p.Address,
		BranchID: p.BranchID,
		IsActive: p.IsActive,
	}
}

// ToListPartiesResponse converts a slice of domain.Party to ListPartiesResponse.
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	responses := make([]PartyResponse, len(parties))
	for i, p := range parties {
		responses[i] = ToPartyResponse(&p)
	}
	return ListPartiesResponse{Parties: responses}
}
