package mapping

import (
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/models"
)

// ToModelItem converts a domain Item to a model Item.
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:      d.ItemID,
		BranchID:    d.BranchID,
		Name:        d.Name,
		Unit:        d.Unit,
		BuyPrice:    d.BuyPrice,
		SellPrice:   d.SellPrice,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item.
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:      m.ItemID,
		BranchID:    m.BranchID,
		Name:        m.Name,
		Unit:        m.Unit,
		BuyPrice:    m.BuyPrice,
		SellPrice:   m.SellPrice,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainItemSlice converts a slice of model Items to domain Items.
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
