// Package schedule derives the per-day dose view from a user's medicines and
// their dose log. The schedule itself is never stored: it is recomputed on
// every read by expanding each active medicine's scheduled times and joining
// the result against logged entries.
package schedule

import (
	"sort"
	"time"

	"github.com/medtrack/medicine-tracker-api/internal/models"
)

// DoseView is one expected dose on a given day. Logged distinguishes a
// status read from a stored log row from the virtual "scheduled" default
// that an absent row implies.
type DoseView struct {
	MedicineID    uint64            `json:"medicine_id"`
	Name          string            `json:"name"`
	Dosage        string            `json:"dosage"`
	ScheduledTime string            `json:"scheduled_time"`
	Status        models.DoseStatus `json:"status"`
	Logged        bool              `json:"logged"`
	LogID         uint64            `json:"log_id,omitempty"`
	TakenAt       *time.Time        `json:"taken_at,omitempty"`
	Notes         string            `json:"notes,omitempty"`
}

type logKey struct {
	medicineID uint64
	time       string
}

// Resolve computes the ordered dose list for asOf. A medicine contributes one
// candidate per scheduled time if it is active, its date window contains the
// day, and its schedule is non-empty. Candidates are ordered by time string;
// times are zero-padded "HH:MM", so lexicographic order is chronological
// order. Duplicate scheduled times produce duplicate rows.
//
// Only logs whose date matches asOf's calendar day are considered; callers
// normally pass the day's logs already filtered by the store.
func Resolve(medicines []models.Medicine, logs []models.DoseLog, asOf time.Time) []DoseView {
	day := models.TruncateToDay(asOf)

	byTuple := make(map[logKey]*models.DoseLog, len(logs))
	for i := range logs {
		l := &logs[i]
		if !l.Date.Equal(day) {
			continue
		}
		byTuple[logKey{l.MedicineID, l.ScheduledTime}] = l
	}

	doses := []DoseView{}
	for i := range medicines {
		m := &medicines[i]
		if !m.IsActive || !m.InWindow(day) || len(m.Times) == 0 {
			continue
		}
		for _, t := range m.Times {
			dose := DoseView{
				MedicineID:    m.ID,
				Name:          m.Name,
				Dosage:        m.Dosage,
				ScheduledTime: t,
				Status:        models.DoseStatusScheduled,
			}
			if l, ok := byTuple[logKey{m.ID, t}]; ok {
				dose.Status = l.Status
				dose.Logged = true
				dose.LogID = l.ID
				dose.TakenAt = l.TakenAt
				dose.Notes = l.Notes
			}
			doses = append(doses, dose)
		}
	}

	sort.SliceStable(doses, func(i, j int) bool {
		return doses[i].ScheduledTime < doses[j].ScheduledTime
	})

	return doses
}
