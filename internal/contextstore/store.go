// Package contextstore holds the per-user pending-upload intent between the
// command that establishes it and the attachment message that consumes it.
package contextstore

import (
	"StudyVault/model"
	"context"
)

// Store keeps at most one UploadContext per user identity.
type Store interface {
	// Set unconditionally overwrites any existing context for the user.
	Set(ctx context.Context, userID string, uc model.UploadContext) error
	// Take returns and atomically removes the user's context. The second
	// return value is false when no live context exists; callers must
	// branch on it rather than treat it as an error.
	Take(ctx context.Context, userID string) (model.UploadContext, bool, error)
}
