package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryCommentStore keeps the comment arena for a session.
type InMemoryCommentStore struct {
	mu       sync.RWMutex
	comments map[string]Comment  // id -> comment
	roots    map[string][]string // videoID -> top-level comment ids in order
}

func NewInMemoryCommentStore(seed []SeedComment) *InMemoryCommentStore {
	s := &InMemoryCommentStore{
		comments: make(map[string]Comment),
		roots:    make(map[string][]string),
	}
	for _, sc := range seed {
		root := sc.Comment
		root.ReplyIDs = nil
		for _, r := range sc.Replies {
			root.ReplyIDs = append(root.ReplyIDs, r.ID)
			s.comments[r.ID] = r
		}
		s.comments[root.ID] = root
		s.roots[root.VideoID] = append(s.roots[root.VideoID], root.ID)
	}
	return s
}

func (s *InMemoryCommentStore) Add(_ context.Context, videoID string, author User, content string, timestampSec *int) (Comment, error) {
	if strings.TrimSpace(content) == "" {
		return Comment{}, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		UserID:    author.ID,
		User:      author,
		Content:   content,
		Timestamp: timestampSec,
		CreatedAt: time.Now().UTC(),
		Likes:     0,
	}
	s.comments[c.ID] = c
	s.roots[videoID] = append(s.roots[videoID], c.ID)
	return c, nil
}

func (s *InMemoryCommentStore) Reply(_ context.Context, parentID string, author User, content string) (Comment, error) {
	if strings.TrimSpace(content) == "" {
		return Comment{}, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := s.comments[parentID]
	if !ok {
		return Comment{}, ErrNotFound
	}

	c := Comment{
		ID:        uuid.NewString(),
		VideoID:   parent.VideoID,
		UserID:    author.ID,
		User:      author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Likes:     0,
	}
	s.comments[c.ID] = c
	parent.ReplyIDs = append(parent.ReplyIDs, c.ID)
	s.comments[parentID] = parent
	return c, nil
}

func (s *InMemoryCommentStore) Like(_ context.Context, commentID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return 0, ErrNotFound
	}
	c.Likes++
	s.comments[commentID] = c
	return c.Likes, nil
}

func (s *InMemoryCommentStore) Thread(_ context.Context, videoID string) ([]CommentNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rootIDs := s.roots[videoID]
	nodes := make([]CommentNode, 0, len(rootIDs))
	for _, id := range rootIDs {
		if c, ok := s.comments[id]; ok {
			nodes = append(nodes, s.buildNode(c))
		}
	}
	return nodes, nil
}

// buildNode materializes a comment subtree. The arena holds child ids only,
// so the recursion is bounded by the tree depth.
func (s *InMemoryCommentStore) buildNode(c Comment) CommentNode {
	node := CommentNode{Comment: c}
	for _, rid := range c.ReplyIDs {
		if r, ok := s.comments[rid]; ok {
			node.Replies = append(node.Replies, s.buildNode(r))
		}
	}
	return node
}
