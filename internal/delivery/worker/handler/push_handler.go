// Package handler contains the Pub/Sub push handlers of the worker delivery.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"

	"ratesmart/config"
	deliverycontext "ratesmart/internal/delivery/context"
	"ratesmart/internal/domain/entity"
	"ratesmart/internal/domain/service"
	"ratesmart/internal/errors"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks a Google-signed push token against an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes review events and writes the moderation feed: every
// event is logged, reviews that need a moderator's eye are raised to warn.
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.Worker != nil && params.Config.Worker.VerifyPushAuth

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		logger:         params.Logger,
	}
}

// HandlePush acknowledges with 200 once the event is recorded. Malformed
// messages get 400 so Pub/Sub dead-letters them instead of retrying.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ReviewEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse review event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	h.record(ctx, reqLogger, pushMsg.Message.MessageID, &event)

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) record(ctx context.Context, logger *slog.Logger, messageID string, event *service.ReviewEvent) {
	attrs := []slog.Attr{
		slog.String("message_id", messageID),
		slog.String("type", string(event.Type)),
		slog.String("review_id", event.ReviewID),
		slog.String("business_id", event.BusinessID),
	}

	switch event.Type {
	case service.ReviewCreated:
		attrs = append(attrs,
			slog.Int("rating", event.Rating),
			slog.String("sentiment", event.Sentiment),
			slog.Bool("is_fake", event.IsFake),
		)
		switch {
		case event.IsFake:
			logger.LogAttrs(ctx, slog.LevelWarn, "[Worker] Review flagged as fake", attrs...)
		case event.Sentiment == string(entity.SentimentNegative):
			logger.LogAttrs(ctx, slog.LevelWarn, "[Worker] Negative review awaiting reply", attrs...)
		default:
			logger.LogAttrs(ctx, slog.LevelInfo, "[Worker] Review created", attrs...)
		}
	case service.ReviewReplied:
		logger.LogAttrs(ctx, slog.LevelInfo, "[Worker] Business replied to review", attrs...)
	case service.ReviewDeleted:
		logger.LogAttrs(ctx, slog.LevelInfo, "[Worker] Review deleted", attrs...)
	default:
		logger.LogAttrs(ctx, slog.LevelWarn, "[Worker] Unknown review event type, acknowledging", attrs...)
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ReviewEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return deliverycontext.NewRequestID()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
