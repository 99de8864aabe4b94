package model

import "time"

// Category classifies an uploaded file and decides its storage path shape.
type Category string

const (
	CategoryNotes       Category = "Notes"
	CategoryAssignments Category = "Assignments"
	CategoryExamPapers  Category = "ExamPapers"
)

// Status tracks assignment progress.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// UploadContext is the per-user pending-upload intent set by a command and
// consumed by the next attachment-bearing message from the same user.
type UploadContext struct {
	Subject     string     `json:"subject"`
	Chapter     string     `json:"chapter,omitempty"`
	Topic       string     `json:"topic,omitempty"`
	Category    Category   `json:"category,omitempty"`
	Status      Status     `json:"status,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// EffectiveCategory returns the category, defaulting to Notes.
func (c UploadContext) EffectiveCategory() Category {
	if c.Category == "" {
		return CategoryNotes
	}
	return c.Category
}

// EffectiveStatus returns the status, defaulting to Pending.
func (c UploadContext) EffectiveStatus() Status {
	if c.Status == "" {
		return StatusPending
	}
	return c.Status
}
