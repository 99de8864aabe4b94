package contextstore

import (
	"StudyVault/model"
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store. maxAge bounds how long an entry
// stays takeable; zero means entries never expire.
type MemoryStore struct {
	mu       sync.Mutex
	contexts map[string]model.UploadContext
	maxAge   time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an in-memory context store.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		contexts: make(map[string]model.UploadContext),
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Set overwrites the user's context, stamping its creation time.
func (s *MemoryStore) Set(_ context.Context, userID string, uc model.UploadContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc.CreatedAt = s.now()
	s.contexts[userID] = uc
	return nil
}

// Take removes and returns the user's context. Entries older than maxAge
// are reported absent even though technically present.
func (s *MemoryStore) Take(_ context.Context, userID string) (model.UploadContext, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc, ok := s.contexts[userID]
	if !ok {
		return model.UploadContext{}, false, nil
	}
	delete(s.contexts, userID)
	if s.maxAge > 0 && s.now().Sub(uc.CreatedAt) > s.maxAge {
		return model.UploadContext{}, false, nil
	}
	return uc, true, nil
}
