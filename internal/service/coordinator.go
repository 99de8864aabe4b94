package service

import (
	"StudyVault/internal/contextstore"
	"StudyVault/internal/storage"
	"StudyVault/model"
	"bytes"
	"context"
	"log"
	"strings"
	"time"
)

// FailureKind names every terminal outcome of the upload pipeline, so
// front ends can branch without inspecting error strings.
type FailureKind string

const (
	FailureNone FailureKind = ""
	// FailureNoActiveContext: an attachment arrived with no prior
	// begin/set-assignment call for that user. No state was changed.
	FailureNoActiveContext FailureKind = "no_active_context"
	// FailureInvalidContext: the consumed context could not be mapped to a
	// storage path. The context is gone and the file was dropped.
	FailureInvalidContext FailureKind = "invalid_context"
	// FailureStorageWrite: the blob write failed; no metadata record exists.
	FailureStorageWrite FailureKind = "storage_write"
	// FailureMetadataWrite: the blob is durable but its record insert
	// failed. The file is stored but unindexed and needs manual
	// reconciliation, so this is surfaced distinctly.
	FailureMetadataWrite FailureKind = "metadata_write"
)

// Attachment is one binary attachment from an inbound message.
type Attachment struct {
	Filename string
	Data     []byte
}

// AttachmentOutcome reports one attachment's terminal result.
type AttachmentOutcome struct {
	Filename string
	Kind     FailureKind
	Link     string
	Record   *model.FileRecord
	Err      error
}

// RecordStore persists file and assignment metadata.
type RecordStore interface {
	InsertFileRecord(ctx context.Context, record *model.FileRecord) error
	InsertAssignmentRecord(ctx context.Context, record *model.AssignmentRecord) error
}

// BeginParams are the arguments of the begin-upload command.
type BeginParams struct {
	Subject     string
	Chapter     string
	Topic       string
	Category    model.Category
	Status      model.Status
	Deadline    string
	Description string
}

// BeginResult reports what the begin-upload command produced.
type BeginResult struct {
	Context   model.UploadContext
	EventLink string
}

// AssignmentParams are the arguments of the set-assignment command. All
// fields are optional; fields may arrive incrementally across commands.
type AssignmentParams struct {
	Subject     string
	Chapter     string
	Topic       string
	Deadline    string
	Description string
}

// AssignmentResult reports what the set-assignment command produced.
type AssignmentResult struct {
	Record      *model.AssignmentRecord
	EventLink   string
	FileOutcome *AttachmentOutcome
}

// Coordinator ties the command-established upload context to the later
// attachment message and runs the ordered storage-then-metadata write.
type Coordinator struct {
	Contexts  contextstore.Store
	Backend   storage.Backend
	Records   RecordStore
	Reminders ReminderScheduler // optional; failures are never fatal
	Root      string            // root container all paths hang off
}

// Begin validates the deadline, writes the user's upload context
// (last-write-wins), and attempts a calendar entry when every field a
// calendar event needs is already present.
func (co *Coordinator) Begin(ctx context.Context, userID string, p BeginParams) (*BeginResult, error) {
	uc := model.UploadContext{
		Subject:     strings.TrimSpace(p.Subject),
		Chapter:     strings.TrimSpace(p.Chapter),
		Topic:       strings.TrimSpace(p.Topic),
		Category:    p.Category,
		Status:      p.Status,
		Description: p.Description,
	}
	if p.Deadline != "" {
		deadline, err := ParseDeadline(p.Deadline)
		if err != nil {
			return nil, err
		}
		uc.Deadline = &deadline
	}
	if err := co.Contexts.Set(ctx, userID, uc); err != nil {
		return nil, err
	}
	result := &BeginResult{Context: uc}
	result.EventLink = co.tryScheduleReminder(ctx, model.AssignmentRecord{
		Subject:     uc.Subject,
		Chapter:     uc.Chapter,
		Topic:       uc.Topic,
		Deadline:    uc.Deadline,
		Description: uc.Description,
	})
	return result, nil
}

// SetAssignment records an assignment deadline, primes an Assignments
// upload context for the user, uploads the optional attachment right away,
// and attempts a best-effort calendar entry.
func (co *Coordinator) SetAssignment(ctx context.Context, userID string, p AssignmentParams, file *Attachment) (*AssignmentResult, error) {
	record := &model.AssignmentRecord{
		Subject:     strings.TrimSpace(p.Subject),
		Chapter:     strings.TrimSpace(p.Chapter),
		Topic:       strings.TrimSpace(p.Topic),
		Description: p.Description,
		Status:      model.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if p.Deadline != "" {
		deadline, err := ParseDeadline(p.Deadline)
		if err != nil {
			return nil, err
		}
		record.Deadline = &deadline
	}

	uc := model.UploadContext{
		Subject:     record.Subject,
		Chapter:     record.Chapter,
		Topic:       record.Topic,
		Category:    model.CategoryAssignments,
		Status:      model.StatusPending,
		Deadline:    record.Deadline,
		Description: record.Description,
	}

	result := &AssignmentResult{}
	if file != nil {
		outcome := co.uploadOne(ctx, uc, *file)
		result.FileOutcome = &outcome
		if outcome.Kind == FailureNone {
			ref := outcome.Record.StorageRef
			record.FileRef = &ref
		}
	}

	if err := co.Records.InsertAssignmentRecord(ctx, record); err != nil {
		return result, err
	}
	result.Record = record

	if err := co.Contexts.Set(ctx, userID, uc); err != nil {
		return result, err
	}

	result.EventLink = co.tryScheduleReminder(ctx, *record)
	return result, nil
}

// ReceiveAttachments consumes the user's pending context exactly once and
// runs every attachment of the message through it sequentially. Each
// attachment gets its own outcome; a failed step stops that attachment's
// remaining steps but not the loop.
func (co *Coordinator) ReceiveAttachments(ctx context.Context, userID string, attachments []Attachment) []AttachmentOutcome {
	uc, ok, err := co.Contexts.Take(ctx, userID)
	if err != nil || !ok {
		return []AttachmentOutcome{{Kind: FailureNoActiveContext, Err: err}}
	}

	// Resolve once: every attachment in the message shares the taken
	// context, so a resolution failure sinks the whole message. The
	// context is not restored.
	if _, err := ResolvePath(uc); err != nil {
		return []AttachmentOutcome{{Kind: FailureInvalidContext, Err: err}}
	}

	outcomes := make([]AttachmentOutcome, 0, len(attachments))
	for _, att := range attachments {
		outcomes = append(outcomes, co.uploadOne(ctx, uc, att))
	}
	return outcomes
}

// uploadOne runs the per-attachment pipeline: resolve path, ensure the
// container chain, write the blob, then insert the metadata record. Step
// N+1 never starts unless step N succeeded.
func (co *Coordinator) uploadOne(ctx context.Context, uc model.UploadContext, att Attachment) AttachmentOutcome {
	outcome := AttachmentOutcome{Filename: att.Filename}

	segments, err := ResolvePath(uc)
	if err != nil {
		outcome.Kind = FailureInvalidContext
		outcome.Err = err
		return outcome
	}

	parent := co.Root
	for _, segment := range segments {
		parent, err = co.Backend.EnsureContainer(ctx, segment, parent)
		if err != nil {
			outcome.Kind = FailureStorageWrite
			outcome.Err = err
			return outcome
		}
	}

	ref, link, err := co.Backend.WriteBlob(ctx, bytes.NewReader(att.Data), int64(len(att.Data)), att.Filename, parent)
	if err != nil {
		outcome.Kind = FailureStorageWrite
		outcome.Err = err
		return outcome
	}

	record := &model.FileRecord{
		Subject:    uc.Subject,
		Topic:      uc.Topic,
		Filename:   att.Filename,
		StorageRef: ref,
		AccessLink: link,
		Category:   uc.EffectiveCategory(),
		UploadedAt: time.Now().UTC(),
	}
	if record.Category == model.CategoryAssignments {
		status := uc.EffectiveStatus()
		record.Status = &status
	} else {
		chapter := uc.Chapter
		record.Chapter = &chapter
	}

	if err := co.Records.InsertFileRecord(ctx, record); err != nil {
		// The blob exists but nothing points at it. Distinct from a
		// storage failure: recovery needs manual reconciliation.
		outcome.Kind = FailureMetadataWrite
		outcome.Link = link
		outcome.Err = err
		return outcome
	}

	outcome.Record = record
	outcome.Link = link
	return outcome
}

// tryScheduleReminder attempts a calendar entry when the full field set is
// known. Calendar trouble is logged and swallowed.
func (co *Coordinator) tryScheduleReminder(ctx context.Context, record model.AssignmentRecord) string {
	if co.Reminders == nil {
		return ""
	}
	if record.Subject == "" || record.Chapter == "" || record.Topic == "" ||
		record.Deadline == nil || record.Description == "" {
		return ""
	}
	link, err := co.Reminders.Schedule(ctx, record)
	if err != nil {
		log.Printf("calendar error: %v", err)
		return ""
	}
	return link
}
