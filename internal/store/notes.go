package store

import "context"

// NoteStore defines the contract for study note persistence within a session.
type NoteStore interface {
	// Add validates and appends a note to the video's sequence.
	// Whitespace-only content is rejected with ErrEmptyContent.
	Add(ctx context.Context, videoID, userID string, timestampSec int, content string, isPublic bool) (StudyNote, error)
	// Delete removes a note by id. Deleting an unknown id is a successful
	// no-op, so deletion is idempotent.
	Delete(ctx context.Context, noteID string) error
	// ListByVideo returns the video's notes in insertion order.
	ListByVideo(ctx context.Context, videoID string) ([]StudyNote, error)
}
