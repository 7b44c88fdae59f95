package models

// Branch mirrors the branches table.
type Branch struct {
	BranchID string `json:"branchID"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
