package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/studyshare-platform/internal/discovery"
	"github.com/example/studyshare-platform/internal/platform/analytics"
	"github.com/example/studyshare-platform/internal/platform/api"
	"github.com/example/studyshare-platform/internal/platform/httpserver"
	"github.com/example/studyshare-platform/internal/platform/metrics"
	"github.com/example/studyshare-platform/internal/store"
)

type videoListResponse struct {
	Videos []videoResponse `json:"videos"`
	Total  int             `json:"total"`
}

type bookmarkResponse struct {
	VideoID    string `json:"video_id"`
	Bookmarked bool   `json:"bookmarked"`
}

// parseFilterSpec reads the optional filter axes from query parameters.
// Values outside the closed difficulty/duration sets are rejected rather
// than silently matching nothing.
func parseFilterSpec(r *http.Request) (discovery.FilterSpec, map[string]any) {
	q := r.URL.Query()
	spec := discovery.FilterSpec{
		Subject:    strings.TrimSpace(q.Get("subject")),
		University: strings.TrimSpace(q.Get("university")),
		SortBy:     discovery.SortKey(strings.ToLower(strings.TrimSpace(q.Get("sort")))),
	}

	if d := strings.TrimSpace(q.Get("difficulty")); d != "" {
		if !store.ValidDifficulty(store.Difficulty(d)) {
			return spec, map[string]any{"difficulty": "must be Beginner, Intermediate or Advanced"}
		}
		spec.Difficulty = store.Difficulty(d)
	}

	if b := strings.ToLower(strings.TrimSpace(q.Get("duration"))); b != "" {
		switch discovery.DurationBucket(b) {
		case discovery.DurationShort, discovery.DurationMedium, discovery.DurationLong:
			spec.Duration = discovery.DurationBucket(b)
		default:
			return spec, map[string]any{"duration": "must be short, medium or long"}
		}
	}
	return spec, nil
}

// ListVideos handles GET /v1/videos
func ListVideos(cs store.CatalogStore, m *metrics.Metrics, pub *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		spec, invalid := parseFilterSpec(r)
		if invalid != nil {
			api.BadRequest(w, "INVALID_FILTER", "invalid filter parameter", rid, invalid)
			return
		}
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		videos, err := cs.List(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}

		filtered := discovery.Filter(videos, spec, query)

		sortLabel := string(spec.SortBy)
		if sortLabel == "" {
			sortLabel = string(discovery.SortRecent)
		}
		m.SearchTotal.WithLabelValues(sortLabel).Inc()
		if query != "" {
			pub.Publish(analytics.SubjectSearchPerformed, "search_performed", "", map[string]any{
				"query":   query,
				"results": len(filtered),
			})
		}

		out := make([]videoResponse, 0, len(filtered))
		for _, v := range filtered {
			out = append(out, toVideoResponse(v))
		}
		api.WriteJSON(w, http.StatusOK, videoListResponse{Videos: out, Total: len(out)})
	}
}

// GetVideo handles GET /v1/videos/{video_id}
func GetVideo(cs store.CatalogStore, pub *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		videoID := strings.TrimSpace(chi.URLParam(r, "video_id"))
		if videoID == "" {
			api.BadRequest(w, "MISSING_ID", "video_id is required", rid, nil)
			return
		}

		v, err := cs.Get(r.Context(), videoID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				api.NotFound(w, "NOT_FOUND", "video not found", rid)
				return
			}
			api.Internal(w, rid)
			return
		}

		pub.Publish(analytics.SubjectVideoViewed, "video_viewed", "", map[string]any{"video_id": videoID})
		api.WriteJSON(w, http.StatusOK, toVideoResponse(v))
	}
}

// ToggleBookmark handles POST /v1/videos/{video_id}/bookmark
func ToggleBookmark(cs store.CatalogStore, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		videoID := strings.TrimSpace(chi.URLParam(r, "video_id"))
		if videoID == "" {
			api.BadRequest(w, "MISSING_ID", "video_id is required", rid, nil)
			return
		}

		bookmarked, err := cs.ToggleBookmark(r.Context(), videoID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				api.NotFound(w, "NOT_FOUND", "video not found", rid)
				return
			}
			api.Internal(w, rid)
			return
		}

		m.BookmarkToggles.Inc()
		api.WriteJSON(w, http.StatusOK, bookmarkResponse{VideoID: videoID, Bookmarked: bookmarked})
	}
}
