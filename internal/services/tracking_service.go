package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/medtrack/medicine-tracker-api/internal/constants"
	"github.com/medtrack/medicine-tracker-api/internal/models"
	"github.com/medtrack/medicine-tracker-api/internal/repository"
	"github.com/medtrack/medicine-tracker-api/internal/schedule"
	"github.com/medtrack/medicine-tracker-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidDoseStatus = errors.New("status must be scheduled, taken or missed")
	ErrNotesTooLong      = errors.New("notes too long")
	// ErrDuplicateDoseLog is returned when a racing insert for the same
	// (user, medicine, date, time) tuple loses to the unique index. The
	// client retries or refreshes; the server does not retry.
	ErrDuplicateDoseLog = errors.New("a log entry for this dose already exists")
)

// TrackingService owns the dose log store and the daily schedule view.
type TrackingService struct {
	medicineRepo repository.MedicineRepository
	doseLogRepo  repository.DoseLogRepository
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(medicineRepo repository.MedicineRepository, doseLogRepo repository.DoseLogRepository) *TrackingService {
	return &TrackingService{
		medicineRepo: medicineRepo,
		doseLogRepo:  doseLogRepo,
	}
}

// RecordStatusInput represents input for logging a dose status.
type RecordStatusInput struct {
	UserID        uint64
	MedicineID    uint64
	Date          time.Time
	ScheduledTime string
	Status        models.DoseStatus
	Notes         string
}

// RecordStatus upserts the log entry for one dose. The medicine must belong
// to the caller; this ownership check is the only authorization applied.
// The date is truncated to its UTC calendar day before matching. Marking a
// dose taken stamps TakenAt with the current instant; any other status
// clears it.
func (s *TrackingService) RecordStatus(input RecordStatusInput) (*models.DoseLog, error) {
	if !models.ValidDoseStatus(input.Status) {
		return nil, ErrInvalidDoseStatus
	}
	if len(input.Notes) > constants.MaxLogNotesLength {
		return nil, ErrNotesTooLong
	}

	scheduledTime, err := utils.NormalizeTimeOfDay(input.ScheduledTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScheduleTime, err)
	}

	if _, err := s.medicineRepo.FindOwned(input.MedicineID, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicineNotFound
		}
		return nil, fmt.Errorf("failed to find medicine: %w", err)
	}

	day := models.TruncateToDay(input.Date)

	entry, err := s.doseLogRepo.FindByTuple(input.UserID, input.MedicineID, day, scheduledTime)
	switch {
	case err == nil:
		entry.Status = input.Status
		entry.Notes = input.Notes
		applyTakenAt(entry)
		if err := s.doseLogRepo.Update(entry); err != nil {
			return nil, fmt.Errorf("failed to update log entry: %w", err)
		}
		return entry, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = &models.DoseLog{
			UserID:        input.UserID,
			MedicineID:    input.MedicineID,
			Date:          day,
			ScheduledTime: scheduledTime,
			Status:        input.Status,
			Notes:         input.Notes,
		}
		applyTakenAt(entry)
		if err := s.doseLogRepo.Create(entry); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicateDoseLog
			}
			return nil, fmt.Errorf("failed to create log entry: %w", err)
		}
		return entry, nil

	default:
		return nil, fmt.Errorf("failed to look up log entry: %w", err)
	}
}

// ListLogsInput represents the optional date bounds for listing log entries.
type ListLogsInput struct {
	UserID uint64
	From   *time.Time
	To     *time.Time
}

// ListLogs returns the caller's log entries, newest date/time first, with the
// referenced medicine joined for display. Entries whose medicine has since
// been deleted are silently excluded.
func (s *TrackingService) ListLogs(input ListLogsInput) ([]models.DoseLog, error) {
	filter := repository.DoseLogFilter{
		From: truncateDatePtr(input.From),
		To:   truncateDatePtr(input.To),
	}

	entries, err := s.doseLogRepo.ListByUser(input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}

	// Orphan filtering: a preload miss leaves the zero value.
	kept := entries[:0]
	for _, entry := range entries {
		if entry.Medicine.ID == 0 {
			continue
		}
		kept = append(kept, entry)
	}

	return kept, nil
}

// DailySchedule resolves the ordered dose view for one calendar day from the
// user's active medicines and that day's log entries. Nothing is persisted:
// doses without a log row come back with the virtual "scheduled" status.
func (s *TrackingService) DailySchedule(userID uint64, asOf time.Time) ([]schedule.DoseView, error) {
	day := models.TruncateToDay(asOf)

	medicines, err := s.medicineRepo.ListActiveByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}

	logs, err := s.doseLogRepo.ListByUserAndDate(userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}

	return schedule.Resolve(medicines, logs, day), nil
}

func applyTakenAt(entry *models.DoseLog) {
	if entry.Status == models.DoseStatusTaken {
		now := time.Now()
		entry.TakenAt = &now
	} else {
		entry.TakenAt = nil
	}
}
