package domain

// Party is an external counterparty of a transaction: a buyer (sales),
// a seller (purchases/loans) or an employee (loans/repayments).
type Party struct {
	PartyID  string    `json:"partyID"`
	Type     PartyType `json:"type"`
	Name     string    `json:"name"`
	Contact  string    `json:"contact"`
	Address  string    `json:"address"`
	BranchID string    `json:"branchID"`
	IsActive bool      `json:"isActive"`
	AuditFields
}
