// internal/app/system/webhook/webhook.go
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned by Send when no webhook URL is set.
var ErrNotConfigured = errors.New("webhook URL not configured")

// Relay forwards subscription events to an operator-configured webhook.
//
// Delivery is one-shot: a failed POST is reported to the caller and not
// retried.
type Relay struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

// Config holds the configuration for creating a Relay.
type Config struct {
	URL     string
	Timeout time.Duration
}

// New creates a Relay with the given configuration. A zero Timeout defaults
// to 10 seconds.
func New(cfg Config, log *zap.Logger) *Relay {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Relay{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Configured reports whether a webhook URL is set.
func (r *Relay) Configured() bool {
	return r.url != ""
}

// Event is the payload forwarded to the webhook.
type Event struct {
	Email   string `json:"email"`
	Payload any    `json:"payload,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Send posts the event to the configured webhook as JSON. Each delivery
// carries a unique X-Delivery-ID header so receivers can deduplicate.
// Any non-2xx response is an error.
func (r *Relay) Send(ctx context.Context, ev Event) error {
	if r.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode webhook event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	deliveryID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-ID", deliveryID)

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Error("webhook delivery failed",
			zap.String("delivery_id", deliveryID),
			zap.Error(err))
		return fmt.Errorf("deliver webhook: %w", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.log.Error("webhook rejected delivery",
			zap.String("delivery_id", deliveryID),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	r.log.Info("webhook delivered",
		zap.String("delivery_id", deliveryID),
		zap.Int("status", resp.StatusCode))

	return nil
}
