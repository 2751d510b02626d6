package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/example/studyshare-platform/internal/platform/metrics"
	"github.com/example/studyshare-platform/internal/store"
)

// setupReq builds a request with chi URL params attached.
func setupReq(method, url, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, bytes.NewBufferString(body))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newCatalog() *store.InMemoryCatalogStore {
	return store.NewInMemoryCatalogStore(store.Seed())
}

func testMetrics() *metrics.Metrics {
	return metrics.New()
}
