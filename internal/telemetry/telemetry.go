// Package telemetry reports which commands are used. Delivery is best effort:
// failures are logged at debug level and never reach the caller.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Tracker receives command usage events.
type Tracker interface {
	TrackEvent(ctx context.Context, name string, properties map[string]string)
}

// Noop discards all events.
type Noop struct{}

func (Noop) TrackEvent(context.Context, string, map[string]string) {}

// DefaultTimeout bounds a single event delivery.
const DefaultTimeout = 2 * time.Second

// Event is the JSON body posted for every tracked command.
type Event struct {
	Name       string            `json:"name"`
	Time       time.Time         `json:"time"`
	SessionID  string            `json:"sessionId"`
	Properties map[string]string `json:"properties"`
}

// HTTPTracker posts events as JSON to an HTTP endpoint.
type HTTPTracker struct {
	Endpoint string
	Client   *http.Client
	Log      logrus.FieldLogger

	sessionID string
	common    map[string]string
}

// NewHTTPTracker returns a tracker with a fresh session id and the common
// properties attached to every event. Development builds report their
// version with a "-dev" suffix.
func NewHTTPTracker(endpoint, version string, log logrus.FieldLogger) *HTTPTracker {
	if version == "" || version == "dev" {
		version = "0.0.0-dev"
	}
	return &HTTPTracker{
		Endpoint:  endpoint,
		Client:    &http.Client{Timeout: DefaultTimeout},
		Log:       log,
		sessionID: uuid.NewString(),
		common: map[string]string{
			"version": version,
			"go":      runtime.Version(),
			"os":      runtime.GOOS,
		},
	}
}

// SessionID identifies all events sent by this process.
func (t *HTTPTracker) SessionID() string {
	return t.sessionID
}

// TrackEvent posts the event synchronously, within DefaultTimeout. Errors are
// logged and dropped.
func (t *HTTPTracker) TrackEvent(ctx context.Context, name string, properties map[string]string) {
	if err := t.send(ctx, name, properties); err != nil && t.Log != nil {
		t.Log.WithError(err).WithField("event", name).Debug("telemetry delivery failed")
	}
}

func (t *HTTPTracker) send(ctx context.Context, name string, properties map[string]string) error {
	props := make(map[string]string, len(t.common)+len(properties))
	for k, v := range t.common {
		props[k] = v
	}
	for k, v := range properties {
		props[k] = v
	}

	body, err := json.Marshal(Event{
		Name:       name,
		Time:       time.Now().UTC(),
		SessionID:  t.sessionID,
		Properties: props,
	})
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("posting event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("posting event: unexpected status %s", resp.Status)
	}
	return nil
}

// New picks the tracker for the given configuration: Noop when disabled or
// when no endpoint is configured.
func New(disabled bool, endpoint, version string, log logrus.FieldLogger) Tracker {
	if disabled || endpoint == "" {
		return Noop{}
	}
	return NewHTTPTracker(endpoint, version, log)
}
