package handlers

import (
	"net/http"

	"github.com/example/studyshare-platform/internal/platform/api"
	"github.com/example/studyshare-platform/internal/platform/httpserver"
	"github.com/example/studyshare-platform/internal/store"
)

// Me handles GET /v1/me. Returns the viewer's profile with badges and the
// seeded contribution counters.
func Me(cs store.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		me, err := cs.CurrentUser(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}
		api.WriteJSON(w, http.StatusOK, toUserResponse(me))
	}
}

type categoryListResponse struct {
	Categories []categoryResponse `json:"categories"`
}

// Categories handles GET /v1/categories
func Categories(cs store.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		cats, err := cs.Categories(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}

		out := make([]categoryResponse, 0, len(cats))
		for _, c := range cats {
			out = append(out, toCategoryResponse(c))
		}
		api.WriteJSON(w, http.StatusOK, categoryListResponse{Categories: out})
	}
}
