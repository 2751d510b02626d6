package store

import "context"

// CatalogStore defines read access to the seeded content catalog plus the
// single mutable axis it carries: the viewer's bookmark state.
type CatalogStore interface {
	// List returns every video in catalog order with the viewer's bookmark
	// state applied.
	List(ctx context.Context) ([]Video, error)
	// Get returns a single video or ErrNotFound.
	Get(ctx context.Context, videoID string) (Video, error)
	// ToggleBookmark flips the viewer-local bookmark for a video and returns
	// the new state. The underlying catalog record is never mutated.
	ToggleBookmark(ctx context.Context, videoID string) (bool, error)

	Categories(ctx context.Context) ([]Category, error)
	Users(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, userID string) (User, error)
	// CurrentUser returns the distinguished viewer identity.
	CurrentUser(ctx context.Context) (User, error)
}
