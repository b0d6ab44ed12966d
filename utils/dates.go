package utils

import (
	"time"

	"hotel-reservation/errs"
)

// ParseDate parses a YYYY-MM-DD value into a midnight-UTC time. Dates
// everywhere in the system are day-granular.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errs.Invalid("invalid date %q, want YYYY-MM-DD", raw)
	}
	return t, nil
}
