package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds supplementary indexes beyond the ones AutoMigrate creates
// from model tags. Postgres only; tests on sqlite skip this.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Dose log lookups: per-user history reads and per-day resolution
		{"dose_logs", "idx_dose_logs_user_date", "user_id, date"},
		{"dose_logs", "idx_dose_logs_status", "status"},

		// Medicine listing per user
		{"medicines", "idx_medicines_user_active", "user_id, is_active"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
