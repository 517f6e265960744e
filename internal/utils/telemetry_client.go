// telemetry_client.go wraps the posthog client so callers never need to care
// whether telemetry is configured. The wrapper is created once in main and
// injected where needed; there is no ambient global tracker.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// TelemetryClient is a nil-safe wrapper around posthog.Client.
type TelemetryClient struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// InitializeTelemetryClient creates the wrapper. With an empty API key it
// returns a disabled client whose methods are all no-ops.
func InitializeTelemetryClient(apiKey string, logger *slog.Logger) *TelemetryClient {
	if apiKey == "" {
		logger.Warn("Telemetry API key is empty, not initializing posthog client.")
		return &TelemetryClient{}
	}
	wrapper := TelemetryClient{logger: logger}
	wrapper.posthogClient, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	return &wrapper
}

// IsInitialized reports whether events will actually be sent.
func (w *TelemetryClient) IsInitialized() bool {
	return w.posthogClient != nil
}

// Enqueue records an event for the given user.
func (w *TelemetryClient) Enqueue(distinctID string, event string, properties map[string]any) {
	if w.posthogClient == nil {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	}
	w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes and shuts down the underlying client.
func (w *TelemetryClient) Close() {
	if w.posthogClient == nil {
		return
	}
	w.posthogClient.Close()
}
