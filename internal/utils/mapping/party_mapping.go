package mapping

import (
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/models"
)

// ToModelParty converts a domain Party to a model Party.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:     d.PartyID,
		Type:        string(d.Type),
		Name:        d.Name,
		Contact:     d.Contact,
		Address:     d.Address,
		BranchID:    d.BranchID,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:     m.PartyID,
		Type:        domain.PartyType(m.Type),
		Name:        m.Name,
		Contact:     m.Contact,
		Address:     m.Address,
		BranchID:    m.BranchID,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model Parties to domain Parties.
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
