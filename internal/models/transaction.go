package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Amounts are always stored
// positive; the type decides the sign effect on the owning shift.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	BranchID        string          `json:"branchID"`
	ShiftID         *string         `json:"shiftID"`
	BuyerID         *string         `json:"buyerID"`
	SellerID        *string         `json:"sellerID"`
	EmployeeID      *string         `json:"employeeID"`
	PartyType       string          `json:"partyType"`
	UserID          string          `json:"userID"`
	Type            string          `json:"type"`
	TransactionDate time.Time       `json:"transactionDate"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// TransactionItem mirrors the transaction_items table.
type TransactionItem struct {
	LineID        string          `json:"lineID"`
	TransactionID string          `json:"transactionID"`
	ItemID        string          `json:"itemID"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}
