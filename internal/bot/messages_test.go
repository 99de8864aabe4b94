package bot

import (
	"StudyVault/internal/service"
	"StudyVault/model"
	"errors"
	"strings"
	"testing"
)

func TestOutcomeMessagePerKind(t *testing.T) {
	chapter := "2"
	success := service.AttachmentOutcome{
		Filename: "notes.pdf",
		Link:     "https://blobs.test/notes.pdf",
		Record: &model.FileRecord{
			Subject:  "Physics",
			Chapter:  &chapter,
			Topic:    "Waves",
			Filename: "notes.pdf",
		},
	}

	cases := []struct {
		outcome  service.AttachmentOutcome
		contains string
	}{
		{service.AttachmentOutcome{Kind: service.FailureNoActiveContext}, "/upload"},
		{service.AttachmentOutcome{Kind: service.FailureInvalidContext, Err: errors.New("chapter is required")}, "rejected"},
		{service.AttachmentOutcome{Kind: service.FailureStorageWrite, Filename: "x.pdf", Err: errors.New("down")}, "Upload failed"},
		{service.AttachmentOutcome{Kind: service.FailureMetadataWrite, Filename: "x.pdf", Link: "l", Err: errors.New("db")}, "stored but could not be indexed"},
		{success, "saved under"},
	}
	for _, tc := range cases {
		msg := outcomeMessage(tc.outcome)
		if msg == "" {
			t.Fatalf("kind %q produced no message", tc.outcome.Kind)
		}
		if !strings.Contains(msg, tc.contains) {
			t.Fatalf("kind %q message %q missing %q", tc.outcome.Kind, msg, tc.contains)
		}
	}
}

func TestSuccessMessageCarriesContextFields(t *testing.T) {
	chapter := "2"
	msg := outcomeMessage(service.AttachmentOutcome{
		Filename: "notes.pdf",
		Link:     "https://blobs.test/n",
		Record: &model.FileRecord{
			Subject: "Physics", Chapter: &chapter, Topic: "Waves", Filename: "notes.pdf",
		},
	})
	for _, want := range []string{"notes.pdf", "Physics", "2", "Waves", "https://blobs.test/n"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("confirmation missing %q: %s", want, msg)
		}
	}
}
