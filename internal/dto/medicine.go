package dto

import (
	"time"

	"github.com/medtrack/medicine-tracker-api/internal/models"
)

// MedicineDTO represents a medicine in API responses
type MedicineDTO struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	Times     []string   `json:"times"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Notes     string     `json:"notes"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToMedicineDTO converts a Medicine model to MedicineDTO
func ToMedicineDTO(medicine models.Medicine) MedicineDTO {
	times := medicine.Times
	if times == nil {
		times = []string{}
	}
	return MedicineDTO{
		ID:        medicine.ID,
		Name:      medicine.Name,
		Dosage:    medicine.Dosage,
		Frequency: medicine.Frequency,
		Times:     times,
		StartDate: medicine.StartDate,
		EndDate:   medicine.EndDate,
		Notes:     medicine.Notes,
		IsActive:  medicine.IsActive,
		CreatedAt: medicine.CreatedAt,
		UpdatedAt: medicine.UpdatedAt,
	}
}

// ToMedicineDTOs converts a slice of medicines
func ToMedicineDTOs(medicines []models.Medicine) []MedicineDTO {
	items := make([]MedicineDTO, len(medicines))
	for i, medicine := range medicines {
		items[i] = ToMedicineDTO(medicine)
	}
	return items
}
