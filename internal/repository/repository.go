package repository

import (
	"time"

	"github.com/medtrack/medicine-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByEmailOrUsername finds a user matching either identity field,
	// used for the registration uniqueness check
	FindByEmailOrUsername(email, username string) (*models.User, error)
}

// MedicineRepository defines the interface for medicine data access.
// Every lookup is scoped to an owning user; a medicine belonging to another
// user is indistinguishable from one that does not exist.
type MedicineRepository interface {
	// Create creates a new medicine
	Create(medicine *models.Medicine) error

	// FindOwned finds a medicine by ID belonging to the given user
	FindOwned(id, userID uint64) (*models.Medicine, error)

	// ListByUser lists all medicines belonging to the given user
	ListByUser(userID uint64) ([]models.Medicine, error)

	// ListActiveByUser lists active medicines belonging to the given user
	ListActiveByUser(userID uint64) ([]models.Medicine, error)

	// Update persists changes to a medicine
	Update(medicine *models.Medicine) error

	// Delete hard-deletes a medicine owned by the given user
	Delete(id, userID uint64) error
}

// DoseLogFilter holds filtering options for listing dose log entries
type DoseLogFilter struct {
	From *time.Time
	To   *time.Time
}

// DoseLogRepository defines the interface for dose log data access
type DoseLogRepository interface {
	// FindByTuple finds the entry for (user, medicine, day, scheduledTime)
	FindByTuple(userID, medicineID uint64, day time.Time, scheduledTime string) (*models.DoseLog, error)

	// Create inserts a new entry. A racing insert for an existing tuple
	// fails with gorm.ErrDuplicatedKey via the compound unique index.
	Create(entry *models.DoseLog) error

	// Update persists changes to an entry
	Update(entry *models.DoseLog) error

	// ListByUser lists the user's entries, newest date/time first, with the
	// referenced medicine preloaded for display
	ListByUser(userID uint64, filter DoseLogFilter) ([]models.DoseLog, error)

	// ListByUserAndDate lists the user's entries for a single day
	ListByUserAndDate(userID uint64, day time.Time) ([]models.DoseLog, error)
}
