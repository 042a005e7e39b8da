package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	p := New(http.StatusConflict, "already there")

	if p.Status != http.StatusConflict {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if p.Error != "Conflict" {
		t.Fatalf("unexpected reason phrase: %q", p.Error)
	}
	if p.Timestamp.IsZero() || p.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp not stamped in UTC: %v", p.Timestamp)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		p      *Problem
		status int
		reason string
	}{
		{"bad request", BadRequest("x"), http.StatusBadRequest, "Bad Request"},
		{"not found", NotFound("x"), http.StatusNotFound, "Not Found"},
		{"conflict", Conflict("x"), http.StatusConflict, "Conflict"},
		{"internal", InternalError("x"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Status != tt.status || tt.p.Error != tt.reason {
				t.Errorf("got %d %q, want %d %q", tt.p.Status, tt.p.Error, tt.status, tt.reason)
			}
		})
	}
}

func TestProblemWrite(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/sleep-logs/latest?x=1", nil)
	resp := httptest.NewRecorder()
	NotFound("nothing here").Write(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("missing content type: %s", got)
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	for _, key := range []string{"timestamp", "status", "error", "message", "path"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("body missing %q: %v", key, decoded)
		}
	}
	if decoded["path"] != "/api/sleep-logs/latest" || decoded["message"] != "nothing here" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
	if decoded["status"] != float64(http.StatusNotFound) || decoded["error"] != "Not Found" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}
