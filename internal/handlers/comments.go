package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/studyshare-platform/internal/platform/analytics"
	"github.com/example/studyshare-platform/internal/platform/api"
	"github.com/example/studyshare-platform/internal/platform/httpserver"
	"github.com/example/studyshare-platform/internal/platform/metrics"
	"github.com/example/studyshare-platform/internal/store"
)

type createCommentRequest struct {
	Content   string `json:"content"`
	Timestamp *int   `json:"timestamp,omitempty"`
}

type createReplyRequest struct {
	Content string `json:"content"`
}

type threadResponse struct {
	Comments []commentResponse `json:"comments"`
}

type likeResponse struct {
	CommentID string `json:"comment_id"`
	Likes     int    `json:"likes"`
}

// GetThread handles GET /v1/videos/{video_id}/comments
func GetThread(comments store.CommentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		videoID := strings.TrimSpace(chi.URLParam(r, "video_id"))
		if videoID == "" {
			api.BadRequest(w, "MISSING_ID", "video_id is required", rid, nil)
			return
		}

		nodes, err := comments.Thread(r.Context(), videoID)
		if err != nil {
			api.Internal(w, rid)
			return
		}

		out := make([]commentResponse, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, toCommentResponse(n))
		}
		api.WriteJSON(w, http.StatusOK, threadResponse{Comments: out})
	}
}

// CreateComment handles POST /v1/videos/{video_id}/comments
func CreateComment(comments store.CommentStore, cs store.CatalogStore, m *metrics.Metrics, pub *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		videoID := strings.TrimSpace(chi.URLParam(r, "video_id"))
		if videoID == "" {
			api.BadRequest(w, "MISSING_ID", "video_id is required", rid, nil)
			return
		}

		var req createCommentRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "invalid JSON", rid, nil)
			return
		}

		me, err := cs.CurrentUser(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}

		c, err := comments.Add(r.Context(), videoID, me, req.Content, req.Timestamp)
		if err != nil {
			if errors.Is(err, store.ErrEmptyContent) {
				m.AnnotationWrites.WithLabelValues("comment", "rejected").Inc()
				api.BadRequest(w, "EMPTY_CONTENT", "content must not be empty", rid, nil)
				return
			}
			api.Internal(w, rid)
			return
		}

		m.AnnotationWrites.WithLabelValues("comment", "ok").Inc()
		pub.Publish(analytics.SubjectCommentAdded, "comment_added", me.ID, map[string]any{"video_id": videoID})
		api.WriteJSON(w, http.StatusCreated, toCommentResponse(store.CommentNode{Comment: c}))
	}
}

// CreateReply handles POST /v1/comments/{comment_id}/replies
func CreateReply(comments store.CommentStore, cs store.CatalogStore, m *metrics.Metrics, pub *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		parentID := strings.TrimSpace(chi.URLParam(r, "comment_id"))
		if parentID == "" {
			api.BadRequest(w, "MISSING_ID", "comment_id is required", rid, nil)
			return
		}

		var req createReplyRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "invalid JSON", rid, nil)
			return
		}

		me, err := cs.CurrentUser(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}

		c, err := comments.Reply(r.Context(), parentID, me, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmptyContent):
				m.AnnotationWrites.WithLabelValues("reply", "rejected").Inc()
				api.BadRequest(w, "EMPTY_CONTENT", "content must not be empty", rid, nil)
			case errors.Is(err, store.ErrNotFound):
				api.NotFound(w, "NOT_FOUND", "parent comment not found", rid)
			default:
				api.Internal(w, rid)
			}
			return
		}

		m.AnnotationWrites.WithLabelValues("reply", "ok").Inc()
		pub.Publish(analytics.SubjectCommentAdded, "comment_added", me.ID, map[string]any{"parent_id": parentID})
		api.WriteJSON(w, http.StatusCreated, toCommentResponse(store.CommentNode{Comment: c}))
	}
}

// LikeComment handles POST /v1/comments/{comment_id}/like
func LikeComment(comments store.CommentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		commentID := strings.TrimSpace(chi.URLParam(r, "comment_id"))
		if commentID == "" {
			api.BadRequest(w, "MISSING_ID", "comment_id is required", rid, nil)
			return
		}

		likes, err := comments.Like(r.Context(), commentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				api.NotFound(w, "NOT_FOUND", "comment not found", rid)
				return
			}
			api.Internal(w, rid)
			return
		}

		api.WriteJSON(w, http.StatusOK, likeResponse{CommentID: commentID, Likes: likes})
	}
}
