package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medtrack/medicine-tracker-api/internal/models"
	"github.com/medtrack/medicine-tracker-api/internal/repository"
	"github.com/medtrack/medicine-tracker-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrMedicineNameRequired = errors.New("medicine name is required")
	ErrInvalidScheduleTime  = errors.New("invalid schedule time")
	ErrInvalidDateRange     = errors.New("end date cannot be before start date")
	// ErrMedicineNotFound covers both a missing medicine and one owned by
	// another user, so the API never reveals which.
	ErrMedicineNotFound = errors.New("medicine not found")
)

// MedicineService handles medicine registry business logic.
type MedicineService struct {
	medicineRepo repository.MedicineRepository
}

// NewMedicineService creates a new MedicineService.
func NewMedicineService(medicineRepo repository.MedicineRepository) *MedicineService {
	return &MedicineService{
		medicineRepo: medicineRepo,
	}
}

// CreateMedicineInput represents input for registering a medicine.
type CreateMedicineInput struct {
	UserID    uint64
	Name      string
	Dosage    string
	Frequency string
	Times     []string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string
	IsActive  *bool
}

// UpdateMedicineInput represents a partial update: only non-nil fields change.
type UpdateMedicineInput struct {
	Name      *string
	Dosage    *string
	Frequency *string
	Times     []string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     *string
	IsActive  *bool
}

// CreateMedicine registers a medicine for a user. Schedule times are
// normalized to zero-padded HH:MM here; malformed times are rejected.
func (s *MedicineService) CreateMedicine(input CreateMedicineInput) (*models.Medicine, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrMedicineNameRequired
	}

	times, err := utils.NormalizeTimesOfDay(input.Times)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScheduleTime, err)
	}

	start := truncateDatePtr(input.StartDate)
	end := truncateDatePtr(input.EndDate)
	if start != nil && end != nil && end.Before(*start) {
		return nil, ErrInvalidDateRange
	}

	medicine := &models.Medicine{
		UserID:    input.UserID,
		Name:      name,
		Dosage:    input.Dosage,
		Frequency: input.Frequency,
		Times:     times,
		StartDate: start,
		EndDate:   end,
		Notes:     input.Notes,
		IsActive:  true,
	}
	if input.IsActive != nil {
		medicine.IsActive = *input.IsActive
	}

	if err := s.medicineRepo.Create(medicine); err != nil {
		return nil, fmt.Errorf("failed to create medicine: %w", err)
	}

	return medicine, nil
}

// ListMedicines returns all medicines belonging to the user.
func (s *MedicineService) ListMedicines(userID uint64) ([]models.Medicine, error) {
	medicines, err := s.medicineRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	return medicines, nil
}

// GetMedicine returns a medicine owned by the user.
func (s *MedicineService) GetMedicine(id, userID uint64) (*models.Medicine, error) {
	medicine, err := s.medicineRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicineNotFound
		}
		return nil, fmt.Errorf("failed to find medicine: %w", err)
	}
	return medicine, nil
}

// UpdateMedicine applies a partial update to a medicine owned by the user.
func (s *MedicineService) UpdateMedicine(id, userID uint64, input UpdateMedicineInput) (*models.Medicine, error) {
	medicine, err := s.GetMedicine(id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrMedicineNameRequired
		}
		medicine.Name = name
	}
	if input.Dosage != nil {
		medicine.Dosage = *input.Dosage
	}
	if input.Frequency != nil {
		medicine.Frequency = *input.Frequency
	}
	if input.Times != nil {
		times, err := utils.NormalizeTimesOfDay(input.Times)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScheduleTime, err)
		}
		medicine.Times = times
	}
	if input.StartDate != nil {
		medicine.StartDate = truncateDatePtr(input.StartDate)
	}
	if input.EndDate != nil {
		medicine.EndDate = truncateDatePtr(input.EndDate)
	}
	if input.Notes != nil {
		medicine.Notes = *input.Notes
	}
	if input.IsActive != nil {
		medicine.IsActive = *input.IsActive
	}

	if medicine.StartDate != nil && medicine.EndDate != nil && medicine.EndDate.Before(*medicine.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if err := s.medicineRepo.Update(medicine); err != nil {
		return nil, fmt.Errorf("failed to update medicine: %w", err)
	}

	return medicine, nil
}

// DeleteMedicine hard-deletes a medicine owned by the user. Existing dose
// logs keep their rows and drop out of views as orphans.
func (s *MedicineService) DeleteMedicine(id, userID uint64) error {
	if err := s.medicineRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMedicineNotFound
		}
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	return nil
}

func truncateDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	day := models.TruncateToDay(*t)
	return &day
}
