package storage

import (
	"context"
	"testing"
)

func TestCleanSegment(t *testing.T) {
	cases := map[string]string{
		"Physics":        "Physics",
		" Physics ":      "Physics",
		"a/b":            "a-b",
		"a\\b":           "a-b",
		"":               "_",
		"  ":             "_",
		"Chapter 2":      "Chapter 2",
		"Notes/../admin": "Notes-..-admin",
	}
	for input, expected := range cases {
		if got := CleanSegment(input); got != expected {
			t.Fatalf("CleanSegment(%q): expect %q, got %q", input, expected, got)
		}
	}
}

func TestJoinContainer(t *testing.T) {
	if got := JoinContainer("", "Notes"); got != "Notes" {
		t.Fatalf("expect Notes, got %q", got)
	}
	if got := JoinContainer("root/Notes", "Physics"); got != "root/Notes/Physics" {
		t.Fatalf("expect root/Notes/Physics, got %q", got)
	}
}

func TestMinioEnsureContainerIdempotent(t *testing.T) {
	backend := NewMinioBackend(nil, "bucket")
	ctx := context.Background()

	first, err := backend.EnsureContainer(ctx, "Notes", "root")
	if err != nil {
		t.Fatalf("EnsureContainer failed: %v", err)
	}
	second, err := backend.EnsureContainer(ctx, "Notes", "root")
	if err != nil {
		t.Fatalf("EnsureContainer failed on repeat: %v", err)
	}
	if first != second {
		t.Fatalf("same (name, parent) must yield the same id: %q vs %q", first, second)
	}
}
