package dto

import (
	"time"

	"github.com/medtrack/medicine-tracker-api/internal/constants"
	"github.com/medtrack/medicine-tracker-api/internal/models"
)

// DoseLogDTO represents a stored dose log entry in API responses. Medicine
// name, dosage and schedule times are joined in for display when the entry
// was loaded with its medicine.
type DoseLogDTO struct {
	ID            uint64            `json:"id"`
	MedicineID    uint64            `json:"medicine_id"`
	MedicineName  string            `json:"medicine_name,omitempty"`
	Dosage        string            `json:"dosage,omitempty"`
	Times         []string          `json:"times,omitempty"`
	Date          string            `json:"date"`
	ScheduledTime string            `json:"scheduled_time"`
	Status        models.DoseStatus `json:"status"`
	TakenAt       *time.Time        `json:"taken_at"`
	Notes         string            `json:"notes"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ToDoseLogDTO converts a DoseLog model to DoseLogDTO
func ToDoseLogDTO(entry models.DoseLog) DoseLogDTO {
	dto := DoseLogDTO{
		ID:            entry.ID,
		MedicineID:    entry.MedicineID,
		Date:          entry.Date.Format(constants.DateLayout),
		ScheduledTime: entry.ScheduledTime,
		Status:        entry.Status,
		TakenAt:       entry.TakenAt,
		Notes:         entry.Notes,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}

	// Include medicine details if preloaded
	if entry.Medicine.ID != 0 {
		dto.MedicineName = entry.Medicine.Name
		dto.Dosage = entry.Medicine.Dosage
		dto.Times = entry.Medicine.Times
	}

	return dto
}

// ToDoseLogDTOs converts a slice of dose log entries
func ToDoseLogDTOs(entries []models.DoseLog) []DoseLogDTO {
	items := make([]DoseLogDTO, len(entries))
	for i, entry := range entries {
		items[i] = ToDoseLogDTO(entry)
	}
	return items
}
