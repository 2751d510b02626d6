package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMe(t *testing.T) {
	handler := Me(newCatalog())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/me", "", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var me userResponse
	_ = json.NewDecoder(rr.Body).Decode(&me)
	if me.ID != "current-user" || me.Name != "Jordan Smith" {
		t.Fatalf("unexpected viewer profile: %+v", me)
	}
	if len(me.Badges) == 0 {
		t.Fatal("expected viewer badges")
	}
}

func TestCategories(t *testing.T) {
	handler := Categories(newCatalog())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, setupReq(http.MethodGet, "/v1/categories", "", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp categoryListResponse
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if len(resp.Categories) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(resp.Categories))
	}
	if resp.Categories[0].Name != "Mathematics" {
		t.Fatalf("expected Mathematics first, got %q", resp.Categories[0].Name)
	}
}
