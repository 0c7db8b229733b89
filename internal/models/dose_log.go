package models

import "time"

type DoseStatus string

const (
	DoseStatusScheduled DoseStatus = "scheduled"
	DoseStatusTaken     DoseStatus = "taken"
	DoseStatusMissed    DoseStatus = "missed"
)

// ValidDoseStatus reports whether s is one of the persistable statuses.
func ValidDoseStatus(s DoseStatus) bool {
	switch s {
	case DoseStatusScheduled, DoseStatusTaken, DoseStatusMissed:
		return true
	}
	return false
}

// DoseLog records the outcome of one scheduled dose. At most one row exists
// per (user, medicine, date, scheduled time); writes for an existing tuple
// update in place. Rows are never created by reading a schedule.
type DoseLog struct {
	ID         uint64 `gorm:"primarykey" json:"id"`
	UserID     uint64 `gorm:"not null;uniqueIndex:idx_dose_logs_tuple" json:"user_id"`
	MedicineID uint64 `gorm:"not null;uniqueIndex:idx_dose_logs_tuple;index" json:"medicine_id"`
	// Date is the calendar day of the dose, truncated to midnight UTC.
	Date          time.Time  `gorm:"not null;uniqueIndex:idx_dose_logs_tuple" json:"date"`
	ScheduledTime string     `gorm:"type:varchar(5);not null;uniqueIndex:idx_dose_logs_tuple" json:"scheduled_time"`
	Status        DoseStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	TakenAt       *time.Time `json:"taken_at"`
	Notes         string     `gorm:"type:varchar(200)" json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

// TruncateToDay drops the time-of-day component, keeping the UTC calendar day.
func TruncateToDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
