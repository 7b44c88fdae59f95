package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enumerates the monetary event kinds recorded against a shift.
type TransactionType string

const (
	TxnSale            TransactionType = "sale"
	TxnPurchase        TransactionType = "purchase"
	TxnExpense         TransactionType = "expense"
	TxnLoan            TransactionType = "loan"
	TxnRepayment       TransactionType = "repayment"
	TxnCapitalAddition TransactionType = "capital_addition"
)

// PaymentMethod enumerates how a transaction was settled.
type PaymentMethod string

const (
	PaymentCash           PaymentMethod = "cash"
	PaymentCheck          PaymentMethod = "check"
	PaymentOnlineTransfer PaymentMethod = "online_transfer"
)

// TransactionStatus enumerates the settlement state of a transaction.
// A completed transaction never reverts to pending.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
)

// PartyType identifies which counterparty reference a transaction carries.
type PartyType string

const (
	PartyBuyer    PartyType = "buyer"
	PartySeller   PartyType = "seller"
	PartyEmployee PartyType = "employee"
	PartyNone     PartyType = "none"
)

// Transaction is an immutable monetary event attributed to a shift.
// TotalAmount is always recorded positive; the sign effect on the owning
// shift's running total depends on Type (see utils/accounting).
// ShiftID is nil only for owner-recorded entries with no active shift.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	BranchID        string            `json:"branchID"`
	ShiftID         *string           `json:"shiftID,omitempty"`
	BuyerID         *string           `json:"buyerID,omitempty"`
	SellerID        *string           `json:"sellerID,omitempty"`
	EmployeeID      *string           `json:"employeeID,omitempty"`
	PartyType       PartyType         `json:"partyType"`
	UserID          string            `json:"userID"` // operator who recorded it
	Type            TransactionType   `json:"type"`
	TransactionDate time.Time         `json:"transactionDate"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	Status          TransactionStatus `json:"status"`
	Notes           string            `json:"notes"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// TransactionUpdate is the partial-update payload for a transaction. Pointer
// fields distinguish omitted fields from zero values; unset fields leave the
// stored row untouched. AmountDelta is ADDED onto the stored total_amount,
// never substituted for it, and the owning shift's running total is adjusted
// by the same signed delta.
type TransactionUpdate struct {
	AmountDelta     *decimal.Decimal
	PaymentMethod   *PaymentMethod
	Status          *TransactionStatus
	Notes           *string
	TransactionDate time.Time // always rewritten
}

// TransactionItem is one item/quantity/price line belonging to a purchase or
// sale transaction. Subtotal is stored explicitly, not re-derived.
type TransactionItem struct {
	LineID        string          `json:"lineID"`
	TransactionID string          `json:"transactionID"`
	ItemID        string          `json:"itemID"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}
