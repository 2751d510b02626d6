package store

import (
	"context"
	"sync"
)

// InMemoryCatalogStore serves the seeded catalog. Videos, users and
// categories are read-only after construction; only the bookmark overlay
// mutates.
type InMemoryCatalogStore struct {
	mu          sync.RWMutex
	videos      []Video
	videoByID   map[string]int // id -> index into videos
	users       []*User
	userByID    map[string]*User
	categories  []Category
	currentUser *User
	bookmarks   map[string]bool // viewer-local overlay, videoID -> bookmarked
}

func NewInMemoryCatalogStore(seed SeedData) *InMemoryCatalogStore {
	s := &InMemoryCatalogStore{
		videos:      seed.Videos,
		videoByID:   make(map[string]int, len(seed.Videos)),
		users:       seed.Users,
		userByID:    make(map[string]*User, len(seed.Users)+1),
		categories:  seed.Categories,
		currentUser: seed.CurrentUser,
		bookmarks:   make(map[string]bool),
	}
	for i, v := range seed.Videos {
		s.videoByID[v.ID] = i
		if v.Bookmarked {
			s.bookmarks[v.ID] = true
		}
	}
	for _, u := range seed.Users {
		s.userByID[u.ID] = u
	}
	if seed.CurrentUser != nil {
		s.userByID[seed.CurrentUser.ID] = seed.CurrentUser
	}
	return s
}

func (s *InMemoryCatalogStore) List(_ context.Context) ([]Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Video, len(s.videos))
	copy(out, s.videos)
	for i := range out {
		out[i].Bookmarked = s.bookmarks[out[i].ID]
	}
	return out, nil
}

func (s *InMemoryCatalogStore) Get(_ context.Context, videoID string) (Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.videoByID[videoID]
	if !ok {
		return Video{}, ErrNotFound
	}
	v := s.videos[i]
	v.Bookmarked = s.bookmarks[v.ID]
	return v, nil
}

func (s *InMemoryCatalogStore) ToggleBookmark(_ context.Context, videoID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videoByID[videoID]; !ok {
		return false, ErrNotFound
	}
	next := !s.bookmarks[videoID]
	if next {
		s.bookmarks[videoID] = true
	} else {
		delete(s.bookmarks, videoID)
	}
	return next, nil
}

func (s *InMemoryCatalogStore) Categories(_ context.Context) ([]Category, error) {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *InMemoryCatalogStore) Users(_ context.Context) ([]*User, error) {
	out := make([]*User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *InMemoryCatalogStore) GetUser(_ context.Context, userID string) (User, error) {
	u, ok := s.userByID[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return *u, nil
}

func (s *InMemoryCatalogStore) CurrentUser(_ context.Context) (User, error) {
	if s.currentUser == nil {
		return User{}, ErrNotFound
	}
	return *s.currentUser, nil
}
