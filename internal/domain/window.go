package domain

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// CheckBookingWindow accepts a booking only when the session starts at least
// minDays full days after now. TooEarlyError carries the days still missing,
// rounded up. Sessions that already started can no longer be booked at all.
func CheckBookingWindow(start, now time.Time, minDays int) error {
	if !start.After(now) {
		return &ValidationError{Reason: "movie session has already started"}
	}

	leadTime := start.Sub(now)
	required := time.Duration(minDays) * day

	if leadTime >= required {
		return nil
	}

	missing := int(math.Ceil(float64(minDays) - leadTime.Hours()/24))

	return &TooEarlyError{DaysRemaining: max(missing, 1)}
}
