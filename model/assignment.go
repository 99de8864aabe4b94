package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentRecord is a persistent deadline entry, created by the
// assignment-setting command whether or not a file is attached.
type AssignmentRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Subject     string             `bson:"subject" json:"subject"`
	Chapter     string             `bson:"chapter" json:"chapter"`
	Topic       string             `bson:"topic" json:"topic"`
	Deadline    *time.Time         `bson:"deadline" json:"deadline,omitempty"`
	Description string             `bson:"description" json:"description"`
	Status      Status             `bson:"status" json:"status"`
	FileRef     *string            `bson:"file_ref" json:"file_ref,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName returns the MongoDB collection name.
func (AssignmentRecord) CollectionName() string {
	return "assignments"
}
