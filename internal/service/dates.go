package service

import (
	"fmt"
	"time"

	"warehouse-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDateRange parses yyyy-mm-dd bounds of a half-open range and enforces
// end > start.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start date %q", domain.ErrValidation, startStr)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end date %q", domain.ErrValidation, endStr)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
	}
	return start, end, nil
}

// today returns the current date truncated to midnight UTC, the boundary
// used when deciding whether a reservation is past or still active.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
