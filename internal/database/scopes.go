package database

import (
	"time"

	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows belonging to the given user. Every
// medicine and dose-log query goes through this scope; cross-user access is
// rejected here rather than in handlers.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// DateBetween applies an inclusive date-range filter on the given column.
// Either bound may be nil, leaving that side open.
func DateBetween(column string, from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}
