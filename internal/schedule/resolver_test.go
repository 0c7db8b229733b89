package schedule

import (
	"testing"
	"time"

	"github.com/medtrack/medicine-tracker-api/internal/models"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestResolve_OrdersDosesByTime(t *testing.T) {
	medicines := []models.Medicine{
		{ID: 1, Name: "Aspirin", Dosage: "1 pill", Times: []string{"20:00", "08:00"}, IsActive: true},
	}

	doses := Resolve(medicines, nil, time.Now())

	require.Len(t, doses, 2)
	require.Equal(t, "08:00", doses[0].ScheduledTime)
	require.Equal(t, "20:00", doses[1].ScheduledTime)
	require.Equal(t, models.DoseStatusScheduled, doses[0].Status)
	require.Equal(t, models.DoseStatusScheduled, doses[1].Status)
	require.False(t, doses[0].Logged)
	require.False(t, doses[1].Logged)
}

func TestResolve_EmptyScheduleYieldsNoDoses(t *testing.T) {
	medicines := []models.Medicine{
		{ID: 1, Name: "Aspirin", Times: []string{}, IsActive: true},
		{ID: 2, Name: "Ibuprofen", Times: nil, IsActive: true},
	}

	doses := Resolve(medicines, nil, time.Now())

	require.Empty(t, doses)
}

func TestResolve_InactiveMedicineYieldsNoDoses(t *testing.T) {
	medicines := []models.Medicine{
		{ID: 1, Name: "Aspirin", Times: []string{"08:00"}, IsActive: false},
	}

	doses := Resolve(medicines, nil, time.Now())

	require.Empty(t, doses)
}

func TestResolve_WindowExcludesDay(t *testing.T) {
	day := models.TruncateToDay(time.Now())

	medicines := []models.Medicine{
		{
			ID:        1,
			Name:      "Starts tomorrow",
			Times:     []string{"08:00"},
			IsActive:  true,
			StartDate: datePtr(day.AddDate(0, 0, 1)),
		},
		{
			ID:       2,
			Name:     "Ended yesterday",
			Times:    []string{"08:00"},
			IsActive: true,
			EndDate:  datePtr(day.AddDate(0, 0, -1)),
		},
	}

	doses := Resolve(medicines, nil, day)

	require.Empty(t, doses)
}

func TestResolve_WindowBoundsAreInclusive(t *testing.T) {
	day := models.TruncateToDay(time.Now())

	medicines := []models.Medicine{
		{
			ID:        1,
			Name:      "Single day course",
			Times:     []string{"08:00"},
			IsActive:  true,
			StartDate: datePtr(day),
			EndDate:   datePtr(day),
		},
	}

	doses := Resolve(medicines, nil, day)

	require.Len(t, doses, 1)
}

func TestResolve_LoggedStatusOverridesDefault(t *testing.T) {
	day := models.TruncateToDay(time.Now())
	takenAt := day.Add(8 * time.Hour)

	medicines := []models.Medicine{
		{ID: 1, Name: "Aspirin", Dosage: "1 pill", Times: []string{"08:00", "20:00"}, IsActive: true},
	}
	logs := []models.DoseLog{
		{
			ID:            7,
			MedicineID:    1,
			Date:          day,
			ScheduledTime: "08:00",
			Status:        models.DoseStatusTaken,
			TakenAt:       &takenAt,
		},
	}

	doses := Resolve(medicines, logs, day)

	require.Len(t, doses, 2)
	require.Equal(t, models.DoseStatusTaken, doses[0].Status)
	require.True(t, doses[0].Logged)
	require.Equal(t, uint64(7), doses[0].LogID)
	require.NotNil(t, doses[0].TakenAt)
	require.Equal(t, models.DoseStatusScheduled, doses[1].Status)
	require.False(t, doses[1].Logged)
}

func TestResolve_IgnoresLogsFromOtherDays(t *testing.T) {
	day := models.TruncateToDay(time.Now())

	medicines := []models.Medicine{
		{ID: 1, Name: "Aspirin", Times: []string{"08:00"}, IsActive: true},
	}
	logs := []models.DoseLog{
		{MedicineID: 1, Date: day.AddDate(0, 0, -1), ScheduledTime: "08:00", Status: models.DoseStatusMissed},
	}

	doses := Resolve(medicines, logs, day)

	require.Len(t, doses, 1)
	require.Equal(t, models.DoseStatusScheduled, doses[0].Status)
	require.False(t, doses[0].Logged)
}

func TestResolve_DuplicateTimesProduceDuplicateRows(t *testing.T) {
	medicines := []models.Medicine{
		{ID: 1, Name: "Aspirin", Times: []string{"08:00", "08:00"}, IsActive: true},
	}

	doses := Resolve(medicines, nil, time.Now())

	require.Len(t, doses, 2)
	require.Equal(t, doses[0].ScheduledTime, doses[1].ScheduledTime)
}

func TestResolve_MergesMultipleMedicines(t *testing.T) {
	medicines := []models.Medicine{
		{ID: 1, Name: "Evening med", Times: []string{"21:00"}, IsActive: true},
		{ID: 2, Name: "Morning med", Times: []string{"07:30"}, IsActive: true},
		{ID: 3, Name: "Midday med", Times: []string{"12:00"}, IsActive: true},
	}

	doses := Resolve(medicines, nil, time.Now())

	require.Len(t, doses, 3)
	require.Equal(t, "Morning med", doses[0].Name)
	require.Equal(t, "Midday med", doses[1].Name)
	require.Equal(t, "Evening med", doses[2].Name)
}
