package models

import "time"

type Medicine struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	UserID    uint64 `gorm:"not null;index" json:"user_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Dosage    string `gorm:"type:varchar(255)" json:"dosage"`
	Frequency string `gorm:"type:varchar(100)" json:"frequency"`
	// Scheduled clock-times, zero-padded "HH:MM", normalized at the service
	// boundary. Stored as a JSON column.
	Times     []string   `gorm:"serializer:json" json:"times"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Notes     string     `gorm:"type:text" json:"notes"`
	// IsActive soft-disables the medicine without deleting it. A hard DELETE
	// removes the row; log entries referencing it become orphans and are
	// excluded from views rather than cascade-deleted.
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// InWindow reports whether the medicine's active date range contains day.
// Absent bounds are open.
func (m *Medicine) InWindow(day time.Time) bool {
	if m.StartDate != nil && m.StartDate.After(day) {
		return false
	}
	if m.EndDate != nil && m.EndDate.Before(day) {
		return false
	}
	return true
}
