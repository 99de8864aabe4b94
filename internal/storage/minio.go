package storage

import (
	"StudyVault/config"
	"StudyVault/utils"
	"context"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioBackend stores blobs as bucket objects. Containers are key
// prefixes, so EnsureContainer never talks to the server.
type MinioBackend struct {
	client *minio.Client
	bucket string
}

// NewMinioBackend builds a Backend from a MinIO client.
func NewMinioBackend(client *minio.Client, bucket string) *MinioBackend {
	return &MinioBackend{client: client, bucket: bucket}
}

// EnsureContainer resolves a prefix-style container. Pure and idempotent:
// the same (name, parent) pair always maps to the same prefix.
func (s *MinioBackend) EnsureContainer(ctx context.Context, name, parent string) (string, error) {
	return JoinContainer(parent, name), nil
}

// WriteBlob uploads an object and returns its key plus a presigned link.
func (s *MinioBackend) WriteBlob(ctx context.Context, reader io.Reader, size int64, filename, parent string) (string, string, error) {
	object := path.Join(parent, utils.GetToken()[:8]+"-"+CleanSegment(filename))
	_, err := s.client.PutObject(ctx, s.bucket, object, reader, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return "", "", err
	}
	link, err := s.client.PresignedGetObject(ctx, s.bucket, object, config.AppConfig.LinkTTL, nil)
	if err != nil {
		return "", "", err
	}
	return object, link.String(), nil
}

// ReadBlob fetches an object by key.
func (s *MinioBackend) ReadBlob(ctx context.Context, ref string) (io.ReadCloser, BlobInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, ref, minio.GetObjectOptions{})
	if err != nil {
		return nil, BlobInfo{}, err
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, BlobInfo{}, err
	}
	info := BlobInfo{
		Filename:    path.Base(ref),
		Size:        stat.Size,
		ContentType: stat.ContentType,
	}
	return obj, info, nil
}

// InitMinio initializes the MinIO client and bucket and exports Default.
func InitMinio() {
	client, err := minio.New(fmt.Sprintf("%s:%s", config.AppConfig.MinioHost, config.AppConfig.MinioPort), &minio.Options{
		Creds:  credentials.NewStaticV4(config.AppConfig.MinioUsername, config.AppConfig.MinioPassword, ""),
		Secure: false,
	})
	if err != nil {
		log.Fatalln("minio error:", err)
	}
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.AppConfig.BucketName)
	if err != nil {
		log.Fatalln("check bucket fail:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.AppConfig.BucketName, minio.MakeBucketOptions{}); err != nil {
			log.Fatalln("create bucket fail:", err)
		}
	}
	Default = NewMinioBackend(client, config.AppConfig.BucketName)
	log.Println("init minio success")
}
