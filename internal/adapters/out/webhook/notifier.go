// Package webhook delivers order events to the external webhook endpoints
// over HTTP. Delivery is a single POST per event; retry policy belongs to the
// receiving side.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"kitchenboard/internal/core/ports"

	"github.com/google/uuid"
)

const (
	eventOrderReady = "order_ready"
	eventReprint    = "reprint"

	defaultTimeout = 10 * time.Second
)

// envelope is the wire format posted to the ready endpoint. The reprint
// endpoint is a printer bridge expecting the bare order summary, so reprint
// events skip the envelope.
type envelope struct {
	Event   string `json:"event"`
	EventID string `json:"eventId"`
	Data    any    `json:"data"`
}

// Notifier implements ports.OrderNotifier over HTTP. Each endpoint may be
// empty, which disables that event kind.
type Notifier struct {
	client     *http.Client
	readyURL   string
	reprintURL string
	logger     *slog.Logger
}

// NewNotifier creates a webhook notifier posting ready events to readyURL and
// reprint events to reprintURL.
func NewNotifier(readyURL, reprintURL string, logger *slog.Logger) *Notifier {
	return &Notifier{
		client:     &http.Client{Timeout: defaultTimeout},
		readyURL:   readyURL,
		reprintURL: reprintURL,
		logger:     logger.With("component", "webhook_notifier"),
	}
}

// NotifyOrderReady posts the order summary to the ready endpoint, wrapped in
// the event envelope.
func (n *Notifier) NotifyOrderReady(ctx context.Context, event ports.OrderReadyEvent) error {
	payload := envelope{
		Event:   eventOrderReady,
		EventID: uuid.NewString(),
		Data:    event,
	}
	return n.post(ctx, n.readyURL, eventOrderReady, payload)
}

// NotifyReprint posts the bare order summary to the printer endpoint.
func (n *Notifier) NotifyReprint(ctx context.Context, event ports.ReprintEvent) error {
	return n.post(ctx, n.reprintURL, eventReprint, event)
}

func (n *Notifier) post(ctx context.Context, url, eventName string, payload any) error {
	if url == "" {
		n.logger.DebugContext(ctx, "webhook endpoint not configured, dropping event", "event", eventName)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", eventName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s event: %w", eventName, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("post %s event: unexpected status %d", eventName, resp.StatusCode)
	}

	return nil
}
