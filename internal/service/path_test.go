package service

import (
	"StudyVault/model"
	"errors"
	"reflect"
	"testing"
)

func TestResolvePathNotes(t *testing.T) {
	uc := model.UploadContext{Subject: "Physics", Chapter: "2", Category: model.CategoryNotes}

	first, err := ResolvePath(uc)
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	expected := []string{"Notes", "Physics", "Chapter 2"}
	if !reflect.DeepEqual(first, expected) {
		t.Fatalf("expect %v, got %v", expected, first)
	}

	// Deterministic: same inputs, same path.
	second, err := ResolvePath(uc)
	if err != nil {
		t.Fatalf("ResolvePath failed on repeat: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolver not deterministic: %v vs %v", first, second)
	}
}

func TestResolvePathDefaultsToNotes(t *testing.T) {
	path, err := ResolvePath(model.UploadContext{Subject: "Math", Chapter: "1"})
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if path[0] != "Notes" {
		t.Fatalf("expect Notes default category, got %v", path)
	}
}

func TestResolvePathAssignmentsDefaultStatus(t *testing.T) {
	uc := model.UploadContext{Subject: "Chem", Category: model.CategoryAssignments}
	path, err := ResolvePath(uc)
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	expected := []string{"Assignments", "Pending", "Chem"}
	if !reflect.DeepEqual(path, expected) {
		t.Fatalf("expect %v, got %v", expected, path)
	}
}

func TestResolvePathAssignmentsCompleted(t *testing.T) {
	uc := model.UploadContext{
		Subject:  "Chem",
		Category: model.CategoryAssignments,
		Status:   model.StatusCompleted,
	}
	path, err := ResolvePath(uc)
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if path[1] != "Completed" {
		t.Fatalf("expect Completed status segment, got %v", path)
	}
}

func TestResolvePathMissingChapter(t *testing.T) {
	uc := model.UploadContext{Subject: "Bio", Category: model.CategoryNotes}
	if _, err := ResolvePath(uc); !errors.Is(err, ErrInvalidContext) {
		t.Fatalf("expect ErrInvalidContext, got %v", err)
	}
}

func TestResolvePathMissingSubject(t *testing.T) {
	if _, err := ResolvePath(model.UploadContext{Chapter: "3"}); !errors.Is(err, ErrInvalidContext) {
		t.Fatalf("expect ErrInvalidContext, got %v", err)
	}
}

func TestResolvePathExamPapers(t *testing.T) {
	uc := model.UploadContext{Subject: "Physics", Chapter: "Optics", Category: model.CategoryExamPapers}
	path, err := ResolvePath(uc)
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	expected := []string{"ExamPapers", "Physics", "Chapter Optics"}
	if !reflect.DeepEqual(path, expected) {
		t.Fatalf("expect %v, got %v", expected, path)
	}
}
