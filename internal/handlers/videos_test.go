package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListVideos_All(t *testing.T) {
	handler := ListVideos(newCatalog(), testMetrics(), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/videos", "", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp videoListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 6 {
		t.Fatalf("expected 6 videos, got %d", resp.Total)
	}
	// Default ordering is upload date descending.
	if resp.Videos[0].ID != "video-1" || resp.Videos[5].ID != "video-6" {
		t.Fatalf("unexpected order: first=%s last=%s", resp.Videos[0].ID, resp.Videos[5].ID)
	}
}

func TestListVideos_SubjectAndSearch(t *testing.T) {
	handler := ListVideos(newCatalog(), testMetrics(), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/videos?subject=Mathematics&q=CALCULUS", "", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp videoListResponse
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Total != 1 || resp.Videos[0].ID != "video-1" {
		t.Fatalf("expected only video-1, got %+v", resp.Videos)
	}
}

func TestListVideos_SortPopular(t *testing.T) {
	handler := ListVideos(newCatalog(), testMetrics(), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/videos?sort=popular", "", nil))

	var resp videoListResponse
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	// video-4 has the most views in the seed catalog.
	if resp.Videos[0].ID != "video-4" {
		t.Fatalf("expected video-4 first, got %s", resp.Videos[0].ID)
	}
}

func TestListVideos_InvalidDifficulty(t *testing.T) {
	handler := ListVideos(newCatalog(), testMetrics(), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/videos?difficulty=Expert", "", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestListVideos_InvalidDuration(t *testing.T) {
	handler := ListVideos(newCatalog(), testMetrics(), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/videos?duration=epic", "", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetVideo_OK(t *testing.T) {
	handler := GetVideo(newCatalog(), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/videos/video-2", "", map[string]string{"video_id": "video-2"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp videoResponse
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Title != "Chemistry Lab Techniques" {
		t.Fatalf("unexpected title %q", resp.Title)
	}
	if resp.Author.ID != "user-5" {
		t.Fatalf("expected author user-5, got %s", resp.Author.ID)
	}
	if !resp.Bookmarked {
		t.Fatal("expected seeded bookmark to surface")
	}
}

func TestGetVideo_NotFound(t *testing.T) {
	handler := GetVideo(newCatalog(), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/videos/nope", "", map[string]string{"video_id": "nope"}))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestToggleBookmark(t *testing.T) {
	cs := newCatalog()
	handler := ToggleBookmark(cs, testMetrics())

	params := map[string]string{"video_id": "video-1"}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodPost, "/v1/videos/video-1/bookmark", "", params))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp bookmarkResponse
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if !resp.Bookmarked {
		t.Fatal("expected bookmarked=true after first toggle")
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodPost, "/v1/videos/video-1/bookmark", "", params))
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Bookmarked {
		t.Fatal("expected bookmarked=false after second toggle")
	}
}

func TestToggleBookmark_NotFound(t *testing.T) {
	handler := ToggleBookmark(newCatalog(), testMetrics())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodPost, "/v1/videos/x/bookmark", "", map[string]string{"video_id": "x"}))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
