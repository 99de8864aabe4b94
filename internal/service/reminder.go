package service

import (
	"StudyVault/config"
	"StudyVault/model"
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ReminderScheduler turns assignment fields into a best-effort external
// calendar entry.
type ReminderScheduler interface {
	Schedule(ctx context.Context, record model.AssignmentRecord) (string, error)
}

// CalendarScheduler creates Google Calendar events for deadlines.
type CalendarScheduler struct {
	svc        *calendar.Service
	calendarID string
	timezone   string
}

// NewCalendarScheduler builds a scheduler from service-account credentials.
func NewCalendarScheduler(ctx context.Context) (*CalendarScheduler, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(config.AppConfig.CredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("init calendar service: %w", err)
	}
	return &CalendarScheduler{
		svc:        svc,
		calendarID: config.AppConfig.CalendarID,
		timezone:   config.AppConfig.CalendarTZ,
	}, nil
}

// Schedule creates a one-hour event ending an hour after the deadline,
// with a 30-minute popup reminder, and returns a link to view it.
func (s *CalendarScheduler) Schedule(ctx context.Context, record model.AssignmentRecord) (string, error) {
	if record.Deadline == nil {
		return "", fmt.Errorf("assignment has no deadline")
	}
	event := &calendar.Event{
		Summary:     fmt.Sprintf("Assignment: %s - %s - %s", record.Subject, record.Chapter, record.Topic),
		Description: record.Description,
		Start: &calendar.EventDateTime{
			DateTime: record.Deadline.Format(time.RFC3339),
			TimeZone: s.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: record.Deadline.Add(time.Hour).Format(time.RFC3339),
			TimeZone: s.timezone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
	created, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return created.HtmlLink, nil
}
