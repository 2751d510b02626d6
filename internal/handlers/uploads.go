package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/example/studyshare-platform/internal/platform/analytics"
	"github.com/example/studyshare-platform/internal/platform/api"
	"github.com/example/studyshare-platform/internal/platform/httpserver"
	"github.com/example/studyshare-platform/internal/platform/metrics"
	"github.com/example/studyshare-platform/internal/store"
	"github.com/example/studyshare-platform/internal/upload"
)

type createUploadRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Subject       string   `json:"subject"`
	Topic         string   `json:"topic,omitempty"`
	Difficulty    string   `json:"difficulty"`
	Tags          []string `json:"tags,omitempty"`
	Course        string   `json:"course,omitempty"`
	IsPublic      bool     `json:"is_public"`
	FileName      string   `json:"file_name"`
	ThumbnailName string   `json:"thumbnail_name,omitempty"`
}

type uploadResponse struct {
	TaskID   string          `json:"task_id"`
	Progress upload.Progress `json:"progress"`
}

// CreateUpload handles POST /v1/uploads. The upload is simulated: the task
// reports progress until a terminal state and never produces a stored video.
func CreateUpload(mgr *upload.Manager, m *metrics.Metrics, pub *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		var req createUploadRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "invalid JSON", rid, nil)
			return
		}

		task, err := mgr.Start(r.Context(), upload.Request{
			Title:         req.Title,
			Description:   req.Description,
			Subject:       req.Subject,
			Topic:         req.Topic,
			Difficulty:    store.Difficulty(req.Difficulty),
			Tags:          req.Tags,
			Course:        req.Course,
			IsPublic:      req.IsPublic,
			FileName:      req.FileName,
			ThumbnailName: req.ThumbnailName,
		})
		if err != nil {
			var verr *upload.ValidationError
			if errors.As(err, &verr) {
				api.BadRequest(w, "VALIDATION", "upload request rejected", rid, toDetails(verr.Fields))
				return
			}
			api.Internal(w, rid)
			return
		}

		go observeUpload(task, m, pub)
		api.WriteJSON(w, http.StatusAccepted, uploadResponse{TaskID: task.ID, Progress: task.Snapshot()})
	}
}

// observeUpload drains the task's event stream to record the terminal
// outcome. The stream is finite, so this always returns.
func observeUpload(task *upload.Task, m *metrics.Metrics, pub *analytics.Publisher) {
	start := time.Now()
	var last upload.Progress
	for p := range task.Events() {
		last = p
	}
	m.UploadOutcomes.WithLabelValues(string(last.State)).Inc()
	m.UploadDuration.Observe(time.Since(start).Seconds())
	if last.State == upload.StateDone {
		pub.Publish(analytics.SubjectUploadCompleted, "upload_completed", "", map[string]any{
			"task_id": task.ID,
			"title":   task.Request.Title,
		})
	}
}

// GetUpload handles GET /v1/uploads/{task_id}
func GetUpload(mgr *upload.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		taskID := strings.TrimSpace(chi.URLParam(r, "task_id"))
		if taskID == "" {
			api.BadRequest(w, "MISSING_ID", "task_id is required", rid, nil)
			return
		}

		task, err := mgr.Get(taskID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				api.NotFound(w, "NOT_FOUND", "upload task not found", rid)
				return
			}
			api.Internal(w, rid)
			return
		}
		api.WriteJSON(w, http.StatusOK, uploadResponse{TaskID: task.ID, Progress: task.Snapshot()})
	}
}

// CancelUpload handles DELETE /v1/uploads/{task_id}. Cancelling an unknown
// or finished task is a no-op.
func CancelUpload(mgr *upload.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		taskID := strings.TrimSpace(chi.URLParam(r, "task_id"))
		if taskID == "" {
			api.BadRequest(w, "MISSING_ID", "task_id is required", rid, nil)
			return
		}

		mgr.Cancel(taskID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func toDetails(fields map[string]string) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
