package dto

import (
	"time"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionItemRequest is one line of a sale or purchase payload. Subtotal
// is taken as supplied, not re-derived from quantity and unit price.
type TransactionItemRequest struct {
	LineID    *string         `json:"lineID,omitempty"` // set on update to amend an existing line
	ItemID    string          `json:"itemID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// RecordExpenseRequest defines the payload for recording an expense.
type RecordExpenseRequest struct {
	BranchID      string          `json:"branchID" binding:"required"`
	UserID        string          `json:"userID" binding:"required"`
	UserType      string          `json:"userType"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=cash check online_transfer"`
	Notes         string          `json:"notes"`
}

// RecordLoanRequest defines the payload for recording a loan or repayment.
// The party is resolved by name against the given party type.
type RecordLoanRequest struct {
	PartyType     string          `json:"partyType" binding:"required,oneof=employee seller"`
	PartyName     string          `json:"name" binding:"required"`
	BranchID      string          `json:"branchID" binding:"required"`
	UserID        string          `json:"userID" binding:"required"`
	UserType      string          `json:"userType"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=cash check online_transfer"`
	Notes         string          `json:"notes"`
}

// RecordSaleRequest defines the payload for recording a sale with line items.
type RecordSaleRequest struct {
	BranchID      string                   `json:"branchID" binding:"required"`
	BuyerID       *string                  `json:"buyerID"`
	UserID        string                   `json:"userID" binding:"required"`
	UserType      string                   `json:"userType"`
	PartyType     string                   `json:"partyType" binding:"required"`
	PaymentMethod string                   `json:"paymentMethod" binding:"omitempty,oneof=cash check online_transfer"`
	Status        string                   `json:"status" binding:"omitempty,oneof=pending completed"`
	Notes         string                   `json:"notes"`
	TotalAmount   decimal.Decimal          `json:"totalAmount"`
	Items         []TransactionItemRequest `json:"items" binding:"required,dive"`
}

// RecordPurchaseRequest defines the payload for recording a purchase with line items.
type RecordPurchaseRequest struct {
	BranchID      string                   `json:"branchID" binding:"required"`
	SellerID      *string                  `json:"sellerID"`
	UserID        string                   `json:"userID" binding:"required"`
	UserType      string                   `json:"userType"`
	PartyType     string                   `json:"partyType" binding:"required"`
	PaymentMethod string                   `json:"paymentMethod" binding:"omitempty,oneof=cash check online_transfer"`
	Status        string                   `json:"status" binding:"omitempty,oneof=pending completed"`
	Notes         string                   `json:"notes"`
	TotalAmount   decimal.Decimal          `json:"totalAmount"`
	Items         []TransactionItemRequest `json:"items" binding:"required,dive"`
}

// UpdateTransactionRequest defines the partial-update payload for a transaction.
// Pointer fields distinguish omitted fields from zero values. TotalAmount, when
// given, ACCUMULATES onto the stored amount; it is not a replacement.
type UpdateTransactionRequest struct {
	TotalAmount   *decimal.Decimal         `json:"totalAmount"`
	PaymentMethod *string                  `json:"paymentMethod" binding:"omitempty,oneof=cash check online_transfer"`
	Status        *string                  `json:"status" binding:"omitempty,oneof=pending completed"`
	Notes         *string                  `json:"notes"`
	UserType      string                   `json:"userType"`
	Items         []TransactionItemRequest `json:"items" binding:"omitempty,dive"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	BranchID        string          `json:"branchID"`
	ShiftID         *string         `json:"shiftID,omitempty"`
	BuyerID         *string         `json:"buyerID,omitempty"`
	SellerID        *string         `json:"sellerID,omitempty"`
	EmployeeID      *string         `json:"employeeID,omitempty"`
	PartyType       string          `json:"partyType"`
	UserID          string          `json:"userID"`
	Type            string          `json:"type"`
	TransactionDate time.Time       `json:"transactionDate"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
}

// TransactionItemResponse defines the data returned for one line item.
type TransactionItemResponse struct {
	LineID    string          `json:"lineID"`
	ItemID    string          `json:"itemID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// GetTransactionResponse combines a transaction with its line items.
type GetTransactionResponse struct {
	Transaction TransactionResponse       `json:"transaction"`
	Items       []TransactionItemResponse `json:"items"`
}

// ListTransactionsResponse wraps a paginated transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		BranchID:        txn.BranchID,
		ShiftID:         txn.ShiftID,
		BuyerID:         txn.BuyerID,
		SellerID:        txn.SellerID,
		EmployeeID:      txn.EmployeeID,
		PartyType:       string(txn.PartyType),
		UserID:          txn.UserID,
		Type:            string(txn.Type),
		TransactionDate: txn.TransactionDate,
		TotalAmount:     txn.TotalAmount,
		PaymentMethod:   string(txn.PaymentMethod),
		Status:          string(txn.Status),
		Notes:           txn.Notes,
	}
}

// ToTransactionItemResponses converts domain line items to their DTOs.
func ToTransactionItemResponses(items []domain.TransactionItem) []TransactionItemResponse {
	responses := make([]TransactionItemResponse, len(items))
	for i, item := range items {
		responses[i] = TransactionItemResponse{
			LineID:    item.LineID,
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	return responses
}

// ToListTransactionsResponse converts domain transactions plus a pagination token.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: responses, NextToken: nextToken}
}
