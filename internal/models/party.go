package models

// Party mirrors the parties table; Type is one of buyer, seller, employee.
type Party struct {
	PartyID  string `json:"partyID"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	BranchID string `json:"branchID"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
