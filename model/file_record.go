package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileRecord is the persistent metadata for one uploaded file. The bytes
// themselves live in the storage backend under StorageRef.
type FileRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Subject    string             `bson:"subject" json:"subject"`
	Chapter    *string            `bson:"chapter" json:"chapter,omitempty"` // nil for assignments
	Topic      string             `bson:"topic" json:"topic"`
	Filename   string             `bson:"filename" json:"filename"`
	StorageRef string             `bson:"storage_ref" json:"storage_ref"`
	AccessLink string             `bson:"access_link" json:"access_link"`
	Category   Category           `bson:"category" json:"category"`
	Status     *Status            `bson:"status,omitempty" json:"status,omitempty"`
	UploadedAt time.Time          `bson:"uploaded_at" json:"uploaded_at"`
}

// CollectionName returns the MongoDB collection name.
func (FileRecord) CollectionName() string {
	return "files"
}
