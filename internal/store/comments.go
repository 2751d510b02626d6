package store

import "context"

// CommentStore defines the contract for per-video comment threads.
//
// Comments are kept as a flat arena keyed by id; each record carries an
// ordered list of child ids. Attaching a reply is a direct id lookup, and
// the structure is cycle-free by construction.
type CommentStore interface {
	// Add appends a top-level comment to the video's thread. The acting
	// user's profile is embedded as a snapshot, likes start at zero and the
	// reply list starts empty. Whitespace-only content is rejected with
	// ErrEmptyContent.
	Add(ctx context.Context, videoID string, author User, content string, timestampSec *int) (Comment, error)
	// Reply attaches a reply to the parent comment anywhere in the tree,
	// or returns ErrNotFound.
	Reply(ctx context.Context, parentID string, author User, content string) (Comment, error)
	// Like increments a comment's like counter and returns the new count.
	Like(ctx context.Context, commentID string) (int, error)
	// Thread returns the video's top-level comments in insertion order with
	// replies materialized recursively.
	Thread(ctx context.Context, videoID string) ([]CommentNode, error)
}
