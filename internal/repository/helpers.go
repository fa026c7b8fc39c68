package repository

import (
	"fmt"
	"time"
)

// timeLayout is a fixed-width RFC 3339 layout, so stored timestamps sort
// lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// column maps a dimension to its column name. Only known dimensions are
// interpolated into SQL.
func column(dim Dimension) (string, error) {
	switch dim {
	case DimRegion, DimProject, DimSubDivision, DimStaff, DimRole:
		return string(dim), nil
	}
	return "", fmt.Errorf("unknown dimension %q", dim)
}
