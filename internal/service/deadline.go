package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDeadline marks a deadline string that does not parse.
var ErrInvalidDeadline = errors.New("invalid deadline format, use YYYY-MM-DD")

const deadlineLayout = "2006-01-02"

// ParseDeadline parses a YYYY-MM-DD deadline and normalizes it to the end
// of that day (23:59 local time).
func ParseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	day, err := time.ParseInLocation(deadlineLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeadline, raw)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 0, 0, time.Local), nil
}
