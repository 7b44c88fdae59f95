package mapping

import (
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		BranchID:        d.BranchID,
		ShiftID:         d.ShiftID,
		BuyerID:         d.BuyerID,
		SellerID:        d.SellerID,
		EmployeeID:      d.EmployeeID,
		PartyType:       string(d.PartyType),
		UserID:          d.UserID,
		Type:            string(d.Type),
		TransactionDate: d.TransactionDate,
		TotalAmount:     d.TotalAmount,
		PaymentMethod:   string(d.PaymentMethod),
		Status:          string(d.Status),
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		BranchID:        m.BranchID,
		ShiftID:         m.ShiftID,
		BuyerID:         m.BuyerID,
		SellerID:        m.SellerID,
		EmployeeID:      m.EmployeeID,
		PartyType:       domain.PartyType(m.PartyType),
		UserID:          m.UserID,
		Type:            domain.TransactionType(m.Type),
		TransactionDate: m.TransactionDate,
		TotalAmount:     m.TotalAmount,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		Status:          domain.TransactionStatus(m.Status),
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelTransactionItem converts a domain TransactionItem to a model TransactionItem.
func ToModelTransactionItem(d domain.TransactionItem) models.TransactionItem {
	return models.TransactionItem{
		LineID:        d.LineID,
		TransactionID: d.TransactionID,
		ItemID:        d.ItemID,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		Subtotal:      d.Subtotal,
	}
}

// ToDomainTransactionItem converts a model TransactionItem to a domain TransactionItem.
func ToDomainTransactionItem(m models.TransactionItem) domain.TransactionItem {
	return domain.TransactionItem{
		LineID:        m.LineID,
		TransactionID: m.TransactionID,
		ItemID:        m.ItemID,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		Subtotal:      m.Subtotal,
	}
}

// ToDomainTransactionItemSlice converts a slice of model TransactionItems to domain items.
func ToDomainTransactionItemSlice(ms []models.TransactionItem) []domain.TransactionItem {
	ds := make([]domain.TransactionItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionItem(m)
	}
	return ds
}
