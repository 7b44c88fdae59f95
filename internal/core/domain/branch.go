package domain

// Branch is one physical junkshop location.
type Branch struct {
	BranchID string `json:"branchID"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
