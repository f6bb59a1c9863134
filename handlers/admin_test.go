package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"paybyphone/session"
)

func adminGet(t *testing.T, e *testEnv, target, password string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	if password != "" {
		req.Header.Set("X-Admin-Password", password)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestAdminAPI_RequiresPassword(t *testing.T) {
	e := newTestEnv(t)

	for _, target := range []string{"/api/admin/sessions", "/api/admin/stats"} {
		if rec := adminGet(t, e, target, ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s without password: status = %d, want 401", target, rec.Code)
		}
		if rec := adminGet(t, e, target, "wrong"); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s wrong password: status = %d, want 401", target, rec.Code)
		}
	}
}

func TestAdminSessions_SerializesByID(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t, "75001", "AB123CD")
	e.do(t, "POST", "/duration/"+id, url.Values{"duration": {"90"}})
	e.do(t, "GET", "/success/"+id, nil)

	rec := adminGet(t, e, "/api/admin/sessions", "secret123")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var out map[string]session.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, ok := out[id]
	if !ok {
		t.Fatalf("session %q not in payload", id)
	}
	if got.Plate != "AB123CD" || got.Price != 3.00 || !got.Paid {
		t.Errorf("payload session = %+v", got)
	}

	// Timestamps serialize as RFC 3339 strings.
	var raw map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	created, _ := raw[id]["created_at"].(string)
	if _, err := time.Parse(time.RFC3339, created); err != nil {
		t.Errorf("created_at %q not RFC 3339: %v", created, err)
	}
	end, _ := raw[id]["end_time"].(string)
	if _, err := time.Parse(time.RFC3339, end); err != nil {
		t.Errorf("end_time %q not RFC 3339: %v", end, err)
	}
}

func TestAdminStats(t *testing.T) {
	e := newTestEnv(t)

	// Empty store: all zeros.
	rec := adminGet(t, e, "/api/admin/stats", "secret123")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var st session.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if st != (session.Stats{}) {
		t.Errorf("empty store stats = %+v", st)
	}

	// One paid, one unpaid.
	id := e.createSession(t, "75001", "AB123CD")
	e.do(t, "POST", "/duration/"+id, url.Values{"duration": {"90"}})
	e.do(t, "GET", "/success/"+id, nil)
	e.createSession(t, "92000", "ZZ999XX")

	rec = adminGet(t, e, "/api/admin/stats", "secret123")
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := session.Stats{
		TotalSessions:  2,
		PaidSessions:   1,
		ActiveSessions: 1,
		TotalRevenue:   3.00,
		DistinctZones:  2,
	}
	if st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}

func TestAdminPage_Renders(t *testing.T) {
	e := newTestEnv(t)
	rec := e.do(t, "GET", "/admin", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Tableau de bord") {
		t.Error("admin page missing dashboard heading")
	}
}
