package service

import (
	"StudyVault/internal/repo"
	"StudyVault/model"
	"StudyVault/utils"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notesCacheTTL = 5 * time.Minute

// MongoRecordStore persists file and assignment records in MongoDB.
type MongoRecordStore struct{}

// InsertFileRecord stores one file's metadata after its bytes are durable.
func (MongoRecordStore) InsertFileRecord(ctx context.Context, record *model.FileRecord) error {
	if record.UploadedAt.IsZero() {
		record.UploadedAt = time.Now().UTC()
	}
	res, err := repo.Files.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = id
	}
	_ = utils.InvalidateNotesListCache(ctx)
	return nil
}

// InsertAssignmentRecord stores one assignment entry.
func (MongoRecordStore) InsertAssignmentRecord(ctx context.Context, record *model.AssignmentRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Status == "" {
		record.Status = model.StatusPending
	}
	res, err := repo.Assignments.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = id
	}
	return nil
}

// regexFilter builds a case-insensitive partial-match filter value.
func regexFilter(value string) bson.M {
	return bson.M{"$regex": value, "$options": "i"}
}

// FindNotes lists Notes records, optionally narrowed by subject and
// chapter with case-insensitive partial matching.
func FindNotes(ctx context.Context, subject, chapter string) ([]model.FileRecord, error) {
	if cached, ok := utils.GetNotesListFromCache(ctx, subject, chapter); ok {
		return cached, nil
	}

	filter := bson.M{"category": model.CategoryNotes}
	if subject != "" {
		filter["subject"] = regexFilter(subject)
	}
	if chapter != "" {
		filter["chapter"] = regexFilter(chapter)
	}

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := repo.Files.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.FileRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	_ = utils.SetNotesListToCache(ctx, subject, chapter, records, notesCacheTTL)
	return records, nil
}

// FindAssignments lists assignment records, optionally narrowed by subject
// (partial match) and exact status.
func FindAssignments(ctx context.Context, subject string, status model.Status) ([]model.AssignmentRecord, error) {
	filter := bson.M{}
	if subject != "" {
		filter["subject"] = regexFilter(subject)
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}})
	cursor, err := repo.Assignments.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.AssignmentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindFileByID fetches one file record by its hex id.
func FindFileByID(ctx context.Context, id string) (*model.FileRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var record model.FileRecord
	if err := repo.Files.FindOne(ctx, bson.M{"_id": oid}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
