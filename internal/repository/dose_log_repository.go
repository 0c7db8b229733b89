package repository

import (
	"time"

	"github.com/medtrack/medicine-tracker-api/internal/database"
	"github.com/medtrack/medicine-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormDoseLogRepository is a GORM implementation of DoseLogRepository
type GormDoseLogRepository struct {
	db *gorm.DB
}

// NewDoseLogRepository creates a new DoseLogRepository
func NewDoseLogRepository(db *gorm.DB) DoseLogRepository {
	return &GormDoseLogRepository{db: db}
}

// FindByTuple finds the entry for (user, medicine, day, scheduledTime)
func (r *GormDoseLogRepository) FindByTuple(userID, medicineID uint64, day time.Time, scheduledTime string) (*models.DoseLog, error) {
	var entry models.DoseLog
	if err := r.db.Scopes(database.OwnedBy(userID)).
		Where("medicine_id = ? AND date = ? AND scheduled_time = ?", medicineID, day, scheduledTime).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create inserts a new entry. The compound unique index on
// (user_id, medicine_id, date, scheduled_time) is the backstop for the
// read-then-write race: the losing insert comes back as ErrDuplicatedKey.
func (r *GormDoseLogRepository) Create(entry *models.DoseLog) error {
	return r.db.Create(entry).Error
}

// Update persists changes to an entry
func (r *GormDoseLogRepository) Update(entry *models.DoseLog) error {
	return r.db.Save(entry).Error
}

// ListByUser lists the user's entries, newest date/time first
func (r *GormDoseLogRepository) ListByUser(userID uint64, filter DoseLogFilter) ([]models.DoseLog, error) {
	var entries []models.DoseLog
	if err := r.db.Scopes(database.OwnedBy(userID), database.DateBetween("date", filter.From, filter.To)).
		Order("date DESC, scheduled_time DESC").
		Preload("Medicine").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUserAndDate lists the user's entries for a single day
func (r *GormDoseLogRepository) ListByUserAndDate(userID uint64, day time.Time) ([]models.DoseLog, error) {
	var entries []models.DoseLog
	if err := r.db.Scopes(database.OwnedBy(userID)).
		Where("date = ?", day).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
