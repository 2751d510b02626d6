package store

import (
	"context"
	"testing"
)

func TestInMemoryCommentStore_Add(t *testing.T) {
	s := NewInMemoryCommentStore(nil)
	ctx := context.Background()

	author := User{ID: "current-user", Name: "Jordan Smith"}
	c, err := s.Add(ctx, "video-1", author, "great walkthrough", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected non-empty id")
	}
	if c.Likes != 0 {
		t.Fatalf("expected likes 0, got %d", c.Likes)
	}
	if len(c.ReplyIDs) != 0 {
		t.Fatalf("expected empty replies, got %v", c.ReplyIDs)
	}
	if c.User.Name != "Jordan Smith" {
		t.Fatalf("expected embedded author snapshot, got %+v", c.User)
	}
}

func TestInMemoryCommentStore_Add_WhitespaceRejected(t *testing.T) {
	s := NewInMemoryCommentStore(nil)
	ctx := context.Background()

	if _, err := s.Add(ctx, "video-1", User{ID: "u"}, "   \t\n", nil); err != ErrEmptyContent {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	nodes, _ := s.Thread(ctx, "video-1")
	if len(nodes) != 0 {
		t.Fatalf("expected unchanged thread, got %d comments", len(nodes))
	}
}

func TestInMemoryCommentStore_Reply(t *testing.T) {
	s := NewInMemoryCommentStore(nil)
	ctx := context.Background()

	root, _ := s.Add(ctx, "video-1", User{ID: "user-4"}, "question about 12:30", nil)
	reply, err := s.Reply(ctx, root.ID, User{ID: "user-3"}, "answered!")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply.VideoID != "video-1" {
		t.Fatalf("expected reply to inherit video id, got %q", reply.VideoID)
	}

	// Reply to a reply: the arena handles arbitrary depth.
	deep, err := s.Reply(ctx, reply.ID, User{ID: "user-4"}, "thanks")
	if err != nil {
		t.Fatalf("nested reply: %v", err)
	}

	nodes, _ := s.Thread(ctx, "video-1")
	if len(nodes) != 1 {
		t.Fatalf("expected 1 root, got %d", len(nodes))
	}
	if len(nodes[0].Replies) != 1 || nodes[0].Replies[0].Comment.ID != reply.ID {
		t.Fatalf("expected reply under root, got %+v", nodes[0].Replies)
	}
	if len(nodes[0].Replies[0].Replies) != 1 || nodes[0].Replies[0].Replies[0].Comment.ID != deep.ID {
		t.Fatal("expected nested reply to be materialized")
	}
}

func TestInMemoryCommentStore_Reply_UnknownParent(t *testing.T) {
	s := NewInMemoryCommentStore(nil)
	ctx := context.Background()

	if _, err := s.Reply(ctx, "no-such-comment", User{ID: "u"}, "hello"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryCommentStore_Like(t *testing.T) {
	s := NewInMemoryCommentStore(nil)
	ctx := context.Background()

	c, _ := s.Add(ctx, "video-1", User{ID: "u"}, "likeable", nil)
	for want := 1; want <= 3; want++ {
		n, err := s.Like(ctx, c.ID)
		if err != nil {
			t.Fatalf("like: %v", err)
		}
		if n != want {
			t.Fatalf("expected %d likes, got %d", want, n)
		}
	}

	if _, err := s.Like(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryCommentStore_Thread_SeedData(t *testing.T) {
	s := NewInMemoryCommentStore(Seed().Comments)
	ctx := context.Background()

	nodes, err := s.Thread(ctx, "video-1")
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level comments for video-1, got %d", len(nodes))
	}
	// Insertion order is preserved.
	if nodes[0].Comment.ID != "comment-1" || nodes[1].Comment.ID != "comment-2" {
		t.Fatalf("unexpected root order: %s, %s", nodes[0].Comment.ID, nodes[1].Comment.ID)
	}
	if len(nodes[1].Replies) != 1 || nodes[1].Replies[0].Comment.ID != "reply-1" {
		t.Fatalf("expected seeded reply under comment-2, got %+v", nodes[1].Replies)
	}

	other, _ := s.Thread(ctx, "video-4")
	if len(other) != 1 || other[0].Comment.ID != "comment-3" {
		t.Fatalf("unexpected thread for video-4: %+v", other)
	}
}

func TestCommentStoreInterface(t *testing.T) {
	var _ CommentStore = (*InMemoryCommentStore)(nil)
	var _ NoteStore = (*InMemoryNoteStore)(nil)
	var _ CatalogStore = (*InMemoryCatalogStore)(nil)
}
