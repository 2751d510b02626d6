package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryNoteStore holds the session's working set of study notes.
type InMemoryNoteStore struct {
	mu      sync.RWMutex
	byVideo map[string][]StudyNote // videoID -> notes in insertion order
}

func NewInMemoryNoteStore(seed []StudyNote) *InMemoryNoteStore {
	s := &InMemoryNoteStore{byVideo: make(map[string][]StudyNote)}
	for _, n := range seed {
		s.byVideo[n.VideoID] = append(s.byVideo[n.VideoID], n)
	}
	return s
}

func (s *InMemoryNoteStore) Add(_ context.Context, videoID, userID string, timestampSec int, content string, isPublic bool) (StudyNote, error) {
	if strings.TrimSpace(content) == "" {
		return StudyNote{}, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := StudyNote{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		UserID:    userID,
		Timestamp: timestampSec,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		IsPublic:  isPublic,
	}
	s.byVideo[videoID] = append(s.byVideo[videoID], n)
	return n, nil
}

func (s *InMemoryNoteStore) Delete(_ context.Context, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for videoID, notes := range s.byVideo {
		for i, n := range notes {
			if n.ID == noteID {
				s.byVideo[videoID] = append(notes[:i:i], notes[i+1:]...)
				return nil
			}
		}
	}
	// Unknown id: idempotent no-op.
	return nil
}

func (s *InMemoryNoteStore) ListByVideo(_ context.Context, videoID string) ([]StudyNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := s.byVideo[videoID]
	out := make([]StudyNote, len(notes))
	copy(out, notes)
	return out, nil
}
