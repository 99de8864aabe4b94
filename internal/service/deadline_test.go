package service

import (
	"errors"
	"testing"
	"time"
)

func TestParseDeadlineNormalizesToEndOfDay(t *testing.T) {
	deadline, err := ParseDeadline("2025-06-22")
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	expected := time.Date(2025, time.June, 22, 23, 59, 0, 0, time.Local)
	if !deadline.Equal(expected) {
		t.Fatalf("expect %v, got %v", expected, deadline)
	}
}

func TestParseDeadlineTrimsWhitespace(t *testing.T) {
	deadline, err := ParseDeadline("  2025-01-02 ")
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	if deadline.Day() != 2 || deadline.Month() != time.January {
		t.Fatalf("unexpected deadline %v", deadline)
	}
}

func TestParseDeadlineRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "22-06-2025", "2025/06/22", "next tuesday", "2025-13-40"} {
		if _, err := ParseDeadline(raw); !errors.Is(err, ErrInvalidDeadline) {
			t.Fatalf("expect ErrInvalidDeadline for %q, got %v", raw, err)
		}
	}
}
