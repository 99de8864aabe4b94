package storage

import (
	"context"
	"io"
	"strings"
)

// BlobInfo describes a stored blob.
type BlobInfo struct {
	Filename    string
	Size        int64
	ContentType string
}

// Backend abstracts the blob store the coordinator writes uploads into.
// Container identifiers are opaque: the MinIO backend uses key prefixes,
// the GridFS backend uses logical folder paths kept in blob metadata.
type Backend interface {
	// EnsureContainer resolves (and creates if needed) the container named
	// name under parent and returns its identifier. Must be idempotent:
	// calling it twice with the same arguments yields the same identifier.
	EnsureContainer(ctx context.Context, name, parent string) (string, error)
	// WriteBlob stores the blob under the given container and returns an
	// opaque storage reference plus a user-facing access link.
	WriteBlob(ctx context.Context, reader io.Reader, size int64, filename, parent string) (ref string, link string, err error)
	// ReadBlob opens the blob identified by a storage reference.
	ReadBlob(ctx context.Context, ref string) (io.ReadCloser, BlobInfo, error)
}

// Default is the main storage backend instance.
var Default Backend

// CleanSegment makes a user-provided name safe as a single path segment.
func CleanSegment(name string) string {
	clean := strings.TrimSpace(name)
	clean = strings.ReplaceAll(clean, "/", "-")
	clean = strings.ReplaceAll(clean, "\\", "-")
	if clean == "" {
		return "_"
	}
	return clean
}

// JoinContainer derives a child container path from its parent.
func JoinContainer(parent, name string) string {
	name = CleanSegment(name)
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
