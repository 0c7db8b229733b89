package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeTimeOfDay validates a clock-time string and returns it in
// zero-padded 24-hour "HH:MM" form ("8:5" becomes "08:05"). Dose ordering
// compares these strings lexicographically, which is only correct when every
// stored time is fixed-width, so normalization happens here at the input
// boundary.
func NormalizeTimeOfDay(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid time %q: hour out of range", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid time %q: minute out of range", s)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// NormalizeTimesOfDay normalizes each entry in order. Duplicates are kept:
// whether two identical scheduled times mean one dose or two is a product
// decision the registry does not make.
func NormalizeTimesOfDay(times []string) ([]string, error) {
	normalized := make([]string, len(times))
	for i, t := range times {
		n, err := NormalizeTimeOfDay(t)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}
	return normalized, nil
}
