package mapping

import (
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift.
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:      d.ShiftID,
		BranchID:     d.BranchID,
		UserID:       d.UserID,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		InitialCash:  d.InitialCash,
		AddedCapital: d.AddedCapital,
		RunningTotal: d.RunningTotal,
		FinalCash:    d.FinalCash,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShift converts a model Shift to a domain Shift.
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:      m.ShiftID,
		BranchID:     m.BranchID,
		UserID:       m.UserID,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		InitialCash:  m.InitialCash,
		AddedCapital: m.AddedCapital,
		RunningTotal: m.RunningTotal,
		FinalCash:    m.FinalCash,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainActiveShiftView converts a model Shift joined with branch columns to the display view.
func ToDomainActiveShiftView(m models.Shift) domain.ActiveShiftView {
	return domain.ActiveShiftView{
		Shift:          ToDomainShift(m),
		BranchName:     m.BranchName,
		BranchLocation: m.BranchLocation,
	}
}

// ToDomainShiftSlice converts a slice of model Shifts to domain Shifts.
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}
