package contextstore

import (
	"StudyVault/model"
	"context"
	"sync"
	"testing"
	"time"
)

func TestTakeWithoutSet(t *testing.T) {
	store := NewMemoryStore(0)
	if _, ok, err := store.Take(context.Background(), "u1"); err != nil || ok {
		t.Fatalf("expect absent, got ok=%v err=%v", ok, err)
	}
}

func TestSetThenTakeOnce(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	if err := store.Set(ctx, "u1", model.UploadContext{Subject: "Physics"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	uc, ok, err := store.Take(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("expect present, got ok=%v err=%v", ok, err)
	}
	if uc.Subject != "Physics" {
		t.Fatalf("expect Physics, got %q", uc.Subject)
	}

	// Take removes atomically: a second take sees nothing.
	if _, ok, _ := store.Take(ctx, "u1"); ok {
		t.Fatal("second take should be absent")
	}
}

func TestSetIsLastWriteWins(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	store.Set(ctx, "u1", model.UploadContext{Subject: "Physics", Chapter: "1"})
	store.Set(ctx, "u1", model.UploadContext{Subject: "Chemistry", Chapter: "4"})

	uc, ok, _ := store.Take(ctx, "u1")
	if !ok {
		t.Fatal("expect present")
	}
	if uc.Subject != "Chemistry" || uc.Chapter != "4" {
		t.Fatalf("expect second write, got %+v", uc)
	}
	if _, ok, _ := store.Take(ctx, "u1"); ok {
		t.Fatal("expect exactly one context after two sets")
	}
}

func TestUsersAreIndependent(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	store.Set(ctx, "u1", model.UploadContext{Subject: "Physics"})
	store.Set(ctx, "u2", model.UploadContext{Subject: "Biology"})

	if uc, ok, _ := store.Take(ctx, "u1"); !ok || uc.Subject != "Physics" {
		t.Fatalf("u1 take wrong: ok=%v uc=%+v", ok, uc)
	}
	if uc, ok, _ := store.Take(ctx, "u2"); !ok || uc.Subject != "Biology" {
		t.Fatalf("u2 take wrong: ok=%v uc=%+v", ok, uc)
	}
}

func TestStaleContextIsAbsent(t *testing.T) {
	store := NewMemoryStore(10 * time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "u1", model.UploadContext{Subject: "Physics"})

	store.now = func() time.Time { return now.Add(11 * time.Minute) }
	if _, ok, _ := store.Take(ctx, "u1"); ok {
		t.Fatal("stale context should be reported absent")
	}
}

func TestFreshContextWithinWindow(t *testing.T) {
	store := NewMemoryStore(10 * time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "u1", model.UploadContext{Subject: "Physics"})

	store.now = func() time.Time { return now.Add(9 * time.Minute) }
	if _, ok, _ := store.Take(ctx, "u1"); !ok {
		t.Fatal("context inside the staleness window should be takeable")
	}
}

func TestConcurrentTakeYieldsOneWinner(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()
	store.Set(ctx, "u1", model.UploadContext{Subject: "Physics"})

	const goroutines = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, _ := store.Take(ctx, "u1"); ok {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for range wins {
		won++
	}
	if won != 1 {
		t.Fatalf("expect exactly one winning take, got %d", won)
	}
}
