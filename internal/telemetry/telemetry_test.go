package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func TestHTTPTrackerPostsEvent(t *testing.T) {
	received := make(chan Event, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var ev Event
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		received <- ev
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := NewHTTPTracker(srv.URL, "1.2.0", logrus.New())
	tr.TrackEvent(context.Background(), "cli mock", map[string]string{"shell": "bash"})

	ev := <-received
	if ev.Name != "cli mock" {
		t.Errorf("Name = %q, want %q", ev.Name, "cli mock")
	}
	if _, err := uuid.Parse(ev.SessionID); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", ev.SessionID, err)
	}
	if ev.SessionID != tr.SessionID() {
		t.Errorf("SessionID = %q, want %q", ev.SessionID, tr.SessionID())
	}
	if ev.Properties["version"] != "1.2.0" || ev.Properties["shell"] != "bash" || ev.Properties["go"] == "" {
		t.Errorf("Properties = %v", ev.Properties)
	}
}

func TestHTTPTrackerDevVersion(t *testing.T) {
	tr := NewHTTPTracker("http://127.0.0.1:0", "dev", nil)
	if tr.common["version"] != "0.0.0-dev" {
		t.Errorf("version = %q, want 0.0.0-dev", tr.common["version"])
	}
}

func TestHTTPTrackerSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := NewHTTPTracker(srv.URL, "1.0.0", nil)
	if err := tr.send(context.Background(), "x", nil); err == nil {
		t.Error("send succeeded on 500")
	}
	// Must not panic with a nil logger or an unreachable endpoint.
	tr.TrackEvent(context.Background(), "x", nil)
	NewHTTPTracker("http://127.0.0.1:1", "1.0.0", nil).TrackEvent(context.Background(), "x", nil)
}

func TestNewSelectsTracker(t *testing.T) {
	if _, ok := New(true, "http://example.com", "1.0.0", nil).(Noop); !ok {
		t.Error("disabled tracker is not Noop")
	}
	if _, ok := New(false, "", "1.0.0", nil).(Noop); !ok {
		t.Error("tracker without endpoint is not Noop")
	}
	if _, ok := New(false, "http://example.com", "1.0.0", nil).(*HTTPTracker); !ok {
		t.Error("enabled tracker is not *HTTPTracker")
	}
}
