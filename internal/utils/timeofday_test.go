package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "08:00", want: "08:00"},
		{input: "8:00", want: "08:00"},
		{input: "8:5", want: "08:05"},
		{input: "23:59", want: "23:59"},
		{input: "0:00", want: "00:00"},
		{input: " 14:30 ", want: "14:30"},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "-1:00", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "12", wantErr: true},
		{input: "12:00:00", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeTimeOfDay(tt.input)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, got)
	}
}

func TestNormalizeTimesOfDay_KeepsOrderAndDuplicates(t *testing.T) {
	got, err := NormalizeTimesOfDay([]string{"20:00", "8:00", "8:00"})
	require.NoError(t, err)
	require.Equal(t, []string{"20:00", "08:00", "08:00"}, got)
}

func TestNormalizeTimesOfDay_RejectsAnyBadEntry(t *testing.T) {
	_, err := NormalizeTimesOfDay([]string{"08:00", "25:00"})
	require.Error(t, err)
}
