package dto

import "StudyVault/model"

// FileListResponse is the response for file listings.
type FileListResponse struct {
	Files []model.FileRecord `json:"files"`
	Total int                `json:"total"`
}

// AssignmentListResponse is the response for assignment listings.
type AssignmentListResponse struct {
	Assignments []model.AssignmentRecord `json:"assignments"`
	Total       int                      `json:"total"`
}
