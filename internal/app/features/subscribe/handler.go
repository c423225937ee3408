// Package subscribe provides the email opt-in endpoints.
//
// Endpoints:
//   - POST /api/subscribe - record an opt-in and relay it to the webhook
//   - GET /api/subscribers - operator export (protected with API key)
//
// Opt-ins are stored in the subscribers collection and forwarded once to
// the configured webhook. There is no retry; a relay failure surfaces as
// 502 so the visitor can try again.
package subscribe

import (
	"errors"
	"net/http"
	"strconv"

	subscriberstore "github.com/z-bubblegum/nigelleadmagnet/internal/app/store/subscribers"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/inputval"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/jsonutil"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/webhook"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler handles subscribe API requests.
type Handler struct {
	db     *mongo.Database
	relay  *webhook.Relay
	logger *zap.Logger
}

// NewHandler creates a new subscribe handler.
func NewHandler(db *mongo.Database, relay *webhook.Relay, logger *zap.Logger) *Handler {
	return &Handler{
		db:     db,
		relay:  relay,
		logger: logger,
	}
}

// SubscribeRequest is the POST /api/subscribe request body. Payload is the
// visitor's current calculator inputs and is passed through to the webhook
// untouched.
type SubscribeRequest struct {
	Email   string `json:"email" validate:"required,email" label:"Email"`
	Source  string `json:"source"`
	Payload any    `json:"payload"`
}

// SubscribeHandler handles POST /api/subscribe.
//
// Responses:
//   - 200 {"status":"subscribed"} - stored and relayed (or already stored)
//   - 400 - malformed JSON or invalid email
//   - 500 - no webhook URL configured
//   - 502 - the webhook rejected or did not answer the relay
func (h *Handler) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	var in SubscribeRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		jsonutil.BadRequest(w, res.First())
		return
	}
	// The email rule above is permissive; require a strict RFC 5322
	// address with no display name so the webhook gets a bare address.
	if !inputval.IsValidEmail(in.Email) {
		jsonutil.BadRequest(w, "A valid email address is required")
		return
	}
	if in.Source == "" {
		in.Source = "calculator"
	}

	store := subscriberstore.New(h.db)
	sub, err := store.Insert(r.Context(), in.Email, in.Source, in.Payload)
	if err != nil && !errors.Is(err, subscriberstore.ErrAlreadySubscribed) {
		h.logger.Error("failed to store subscriber",
			zap.String("source", in.Source),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to store subscription")
		return
	}
	if sub != nil {
		h.logger.Info("subscriber stored",
			zap.String("source", in.Source),
			zap.String("id", sub.ID.Hex()))
	}

	if !h.relay.Configured() {
		h.logger.Error("subscribe webhook URL is not configured")
		jsonutil.InternalError(w, "Subscription relay is not configured")
		return
	}

	ev := webhook.Event{
		Email:   in.Email,
		Source:  in.Source,
		Payload: in.Payload,
	}
	if err := h.relay.Send(r.Context(), ev); err != nil {
		h.logger.Error("failed to relay subscription",
			zap.String("source", in.Source),
			zap.Error(err))
		jsonutil.BadGateway(w, "Failed to deliver subscription")
		return
	}

	jsonutil.OK(w, map[string]string{"status": "subscribed"})
}

// ExportResponse is the GET /api/subscribers response body.
type ExportResponse struct {
	Count       int                 `json:"count"`
	Subscribers []models.Subscriber `json:"subscribers"`
}

// ExportHandler handles GET /api/subscribers.
//
// Returns stored opt-ins newest-first. An optional ?limit= caps the result
// size; anything unparseable means no limit.
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	store := subscriberstore.New(h.db)
	subs, err := store.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list subscribers", zap.Error(err))
		jsonutil.InternalError(w, "Failed to list subscribers")
		return
	}
	if subs == nil {
		subs = []models.Subscriber{}
	}

	jsonutil.OK(w, ExportResponse{
		Count:       len(subs),
		Subscribers: subs,
	})
}
