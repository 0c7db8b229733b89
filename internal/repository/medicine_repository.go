package repository

import (
	"github.com/medtrack/medicine-tracker-api/internal/database"
	"github.com/medtrack/medicine-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormMedicineRepository is a GORM implementation of MedicineRepository
type GormMedicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new MedicineRepository
func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &GormMedicineRepository{db: db}
}

// Create creates a new medicine
func (r *GormMedicineRepository) Create(medicine *models.Medicine) error {
	return r.db.Create(medicine).Error
}

// FindOwned finds a medicine by ID belonging to the given user
func (r *GormMedicineRepository) FindOwned(id, userID uint64) (*models.Medicine, error) {
	var medicine models.Medicine
	if err := r.db.Scopes(database.OwnedBy(userID)).First(&medicine, id).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

// ListByUser lists all medicines belonging to the given user
func (r *GormMedicineRepository) ListByUser(userID uint64) ([]models.Medicine, error) {
	var medicines []models.Medicine
	if err := r.db.Scopes(database.OwnedBy(userID)).
		Order("created_at DESC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// ListActiveByUser lists active medicines belonging to the given user
func (r *GormMedicineRepository) ListActiveByUser(userID uint64) ([]models.Medicine, error) {
	var medicines []models.Medicine
	if err := r.db.Scopes(database.OwnedBy(userID)).
		Where("is_active = ?", true).
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// Update persists changes to a medicine
func (r *GormMedicineRepository) Update(medicine *models.Medicine) error {
	return r.db.Save(medicine).Error
}

// Delete hard-deletes a medicine owned by the given user. Dose logs that
// reference it are left in place and filtered out of views on read.
func (r *GormMedicineRepository) Delete(id, userID uint64) error {
	result := r.db.Scopes(database.OwnedBy(userID)).Delete(&models.Medicine{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
