package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"clawdeck/config"
	deliverycontext "clawdeck/internal/delivery/context"
	"clawdeck/internal/domain/constants"
	"clawdeck/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
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

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying device lifecycle events
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse device event
	var event service.DeviceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse device event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing device event",
		slog.String("event_type", event.EventType),
		slog.String("device_id", event.DeviceID),
	)

	// Process the event
	if err := h.processDeviceEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process device event",
			slog.String("event_type", event.EventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Device event processed successfully",
		slog.String("event_type", event.EventType),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DeviceEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processDeviceEvent turns a device lifecycle event into a console push
// notification on the owner's per-user topic.
func (h *PushHandler) processDeviceEvent(ctx context.Context, event *service.DeviceEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	title, body, ok := notificationContent(event)
	if !ok {
		h.logger.Debug("[Worker] Event type carries no notification",
			slog.String("event_type", event.EventType),
		)

		return nil
	}

	data := map[string]string{
		"event_type":  event.EventType,
		"device_id":   event.DeviceID,
		"device_name": event.DeviceName,
		"occurred_at": event.OccurredAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	topic := userTopic(userID)
	if err := h.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		// The messaging backend may be temporarily unavailable.
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// notificationContent renders the user-facing text for an event type.
func notificationContent(event *service.DeviceEvent) (title, body string, ok bool) {
	name := event.DeviceName
	if name == "" {
		name = "您的設備"
	}

	switch event.EventType {
	case service.DeviceEventRegistered:
		return "設備已綁定", fmt.Sprintf("%s 已成功綁定至您的帳號", name), true
	case service.DeviceEventRemoved:
		return "設備已解除綁定", fmt.Sprintf("%s 已從您的帳號移除", name), true
	case service.DeviceEventOnline:
		return "設備已上線", fmt.Sprintf("%s 已連線", name), true
	case service.DeviceEventOffline:
		return "設備已離線", fmt.Sprintf("%s 失去連線，請檢查網路狀態", name), true
	case service.DeviceEventSkillChanged:
		return "技能已更新", fmt.Sprintf("%s 的技能設定已變更", name), true
	default:
		return "", "", false
	}
}

// userTopic is the Firebase topic the console client subscribes to.
func userTopic(userID uuid.UUID) string {
	return "user-" + userID.String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
