package storage

import (
	"StudyVault/config"
	"context"
	"fmt"
	"io"
	"log"
	"path"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSBackend stores blobs inside MongoDB. Containers are logical folder
// paths kept in each file's metadata; access links point at the HTTP
// download endpoint served by this process.
type GridFSBackend struct {
	bucket  *gridfs.Bucket
	baseURL string
}

// NewGridFSBackend builds a Backend over a GridFS bucket.
func NewGridFSBackend(db *mongo.Database, baseURL string) (*GridFSBackend, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}
	return &GridFSBackend{bucket: bucket, baseURL: baseURL}, nil
}

// EnsureContainer resolves a logical folder path. Idempotent by
// construction: GridFS has no real folders to create.
func (s *GridFSBackend) EnsureContainer(ctx context.Context, name, parent string) (string, error) {
	return JoinContainer(parent, name), nil
}

// WriteBlob uploads a file into the bucket, recording its folder path in
// metadata, and returns the ObjectID hex as the storage reference.
func (s *GridFSBackend) WriteBlob(ctx context.Context, reader io.Reader, size int64, filename, parent string) (string, string, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"folder": parent})
	id, err := s.bucket.UploadFromStream(path.Join(parent, CleanSegment(filename)), reader, opts)
	if err != nil {
		return "", "", err
	}
	ref := id.Hex()
	link := fmt.Sprintf("%s/api/blobs/%s/download", s.baseURL, ref)
	return ref, link, nil
}

// ReadBlob opens a stored file by its ObjectID hex reference.
func (s *GridFSBackend) ReadBlob(ctx context.Context, ref string) (io.ReadCloser, BlobInfo, error) {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, BlobInfo{}, fmt.Errorf("invalid storage reference %q: %w", ref, err)
	}
	stream, err := s.bucket.OpenDownloadStream(id)
	if err != nil {
		return nil, BlobInfo{}, err
	}
	file := stream.GetFile()
	info := BlobInfo{
		Filename:    path.Base(file.Name),
		Size:        file.Length,
		ContentType: "application/octet-stream",
	}
	return stream, info, nil
}

// InitGridFS initializes the GridFS-backed store and exports Default.
func InitGridFS(db *mongo.Database) {
	backend, err := NewGridFSBackend(db, config.AppConfig.PublicBaseURL)
	if err != nil {
		log.Fatalln("init gridfs fail:", err)
	}
	Default = backend
	log.Println("init gridfs success")
}
