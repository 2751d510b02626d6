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

type createNoteRequest struct {
	Timestamp int    `json:"timestamp"`
	Content   string `json:"content"`
	IsPublic  bool   `json:"is_public"`
}

type noteListResponse struct {
	Notes []noteResponse `json:"notes"`
}

// ListNotes handles GET /v1/videos/{video_id}/notes
func ListNotes(ns store.NoteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		videoID := strings.TrimSpace(chi.URLParam(r, "video_id"))
		if videoID == "" {
			api.BadRequest(w, "MISSING_ID", "video_id is required", rid, nil)
			return
		}

		notes, err := ns.ListByVideo(r.Context(), videoID)
		if err != nil {
			api.Internal(w, rid)
			return
		}

		out := make([]noteResponse, 0, len(notes))
		for _, n := range notes {
			out = append(out, toNoteResponse(n))
		}
		api.WriteJSON(w, http.StatusOK, noteListResponse{Notes: out})
	}
}

// CreateNote handles POST /v1/videos/{video_id}/notes
func CreateNote(ns store.NoteStore, cs store.CatalogStore, m *metrics.Metrics, pub *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		videoID := strings.TrimSpace(chi.URLParam(r, "video_id"))
		if videoID == "" {
			api.BadRequest(w, "MISSING_ID", "video_id is required", rid, nil)
			return
		}

		var req createNoteRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "invalid JSON", rid, nil)
			return
		}
		if req.Timestamp < 0 {
			api.BadRequest(w, "INVALID_TIMESTAMP", "timestamp must not be negative", rid, nil)
			return
		}

		me, err := cs.CurrentUser(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}

		n, err := ns.Add(r.Context(), videoID, me.ID, req.Timestamp, req.Content, req.IsPublic)
		if err != nil {
			if errors.Is(err, store.ErrEmptyContent) {
				m.AnnotationWrites.WithLabelValues("note", "rejected").Inc()
				api.BadRequest(w, "EMPTY_CONTENT", "content must not be empty", rid, nil)
				return
			}
			api.Internal(w, rid)
			return
		}

		m.AnnotationWrites.WithLabelValues("note", "ok").Inc()
		pub.Publish(analytics.SubjectNoteAdded, "note_added", me.ID, map[string]any{"video_id": videoID})
		api.WriteJSON(w, http.StatusCreated, toNoteResponse(n))
	}
}

// DeleteNote handles DELETE /v1/notes/{note_id}. Deletion is idempotent:
// unknown ids answer 204 as well.
func DeleteNote(ns store.NoteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		noteID := strings.TrimSpace(chi.URLParam(r, "note_id"))
		if noteID == "" {
			api.BadRequest(w, "MISSING_ID", "note_id is required", rid, nil)
			return
		}

		if err := ns.Delete(r.Context(), noteID); err != nil {
			api.Internal(w, rid)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
