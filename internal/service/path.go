package service

import (
	"StudyVault/model"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidContext marks an upload context that cannot be mapped to a
// storage path.
var ErrInvalidContext = errors.New("invalid upload context")

// ResolvePath maps an upload context onto its folder path. Pure: the same
// context always yields the same segments.
//
// Assignments file under /Assignments/<status>/<subject>; every other
// category files under /<category>/<subject>/Chapter <chapter>, and a
// missing chapter is rejected rather than written under a guessed folder.
func ResolvePath(uc model.UploadContext) ([]string, error) {
	subject := strings.TrimSpace(uc.Subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidContext)
	}
	category := uc.EffectiveCategory()
	if category == model.CategoryAssignments {
		return []string{
			string(model.CategoryAssignments),
			string(uc.EffectiveStatus()),
			subject,
		}, nil
	}
	chapter := strings.TrimSpace(uc.Chapter)
	if chapter == "" {
		return nil, fmt.Errorf("%w: chapter is required for %s uploads", ErrInvalidContext, category)
	}
	return []string{string(category), subject, "Chapter " + chapter}, nil
}
