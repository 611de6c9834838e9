package service

import (
	"fmt"
	"strings"
	"time"

	apperr "taskboard/internal/errors"
)

// DateLayout is the calendar date format used by HTML date inputs.
const DateLayout = "2006-01-02"

// StartOfDay parses a calendar date as 00:00:00.000 UTC.
func StartOfDay(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperr.ErrInvalidDate, value)
	}
	return t, nil
}

// EndOfDay parses a calendar date as 23:59:59.999 UTC.
func EndOfDay(value string) (time.Time, error) {
	t, err := StartOfDay(value)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Millisecond), nil
}
