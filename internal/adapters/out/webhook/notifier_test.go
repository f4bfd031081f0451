package webhook_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchenboard/internal/adapters/out/webhook"
	"kitchenboard/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifier_NotifyOrderReady(t *testing.T) {
	var captured struct {
		Event   string                `json:"event"`
		EventID string                `json:"eventId"`
		Data    ports.OrderReadyEvent `json:"data"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := webhook.NewNotifier(server.URL, "", discardLogger())

	err := notifier.NotifyOrderReady(t.Context(), ports.OrderReadyEvent{
		OrderID:      "ORD-001",
		CustomerName: "Ama",
		Phone:        "0241234567",
		Items:        "Jollof, Chicken",
		ReadyAt:      "2025-12-25 14:30:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "order_ready", captured.Event)
	assert.NotEmpty(t, captured.EventID)
	assert.Equal(t, "ORD-001", captured.Data.OrderID)
	assert.Equal(t, "2025-12-25 14:30:00", captured.Data.ReadyAt)
}

// The printer bridge expects the bare order summary, not the event envelope.
func TestNotifier_NotifyReprint_PostsFlatSummary(t *testing.T) {
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier := webhook.NewNotifier("", server.URL, discardLogger())

	err := notifier.NotifyReprint(t.Context(), ports.ReprintEvent{
		OrderID:      "ORD-001",
		CustomerName: "Ama",
		Items:        "Jollof",
		Amount:       45.50,
		IsReprint:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "ORD-001", captured["orderId"])
	assert.Equal(t, "Ama", captured["customerName"])
	assert.Equal(t, true, captured["isReprint"])
	assert.InDelta(t, 45.50, captured["amount"], 0.001)
	assert.NotContains(t, captured, "event")
	assert.NotContains(t, captured, "data")
}

func TestNotifier_ErrorStatusSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := webhook.NewNotifier(server.URL, "", discardLogger())

	err := notifier.NotifyOrderReady(t.Context(), ports.OrderReadyEvent{OrderID: "ORD-001"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 500")
}

func TestNotifier_UnconfiguredEndpointIsNoOp(t *testing.T) {
	notifier := webhook.NewNotifier("", "", discardLogger())

	require.NoError(t, notifier.NotifyOrderReady(t.Context(), ports.OrderReadyEvent{OrderID: "ORD-001"}))
	require.NoError(t, notifier.NotifyReprint(t.Context(), ports.ReprintEvent{OrderID: "ORD-001"}))
}
