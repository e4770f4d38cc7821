package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clawdeck/config"
	"clawdeck/internal/domain/constants"
	"clawdeck/internal/domain/service"
	mockSvc "clawdeck/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockNotificationService) {
	notificationSvc := mockSvc.NewMockNotificationService(t)

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderLocal}

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
	})

	return h, notificationSvc
}

func pushRequest(t *testing.T, event *service.DeviceEvent) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(PubSubMessage{
		Message: struct {
			Data        string            `json:"data"`
			Attributes  map[string]string `json:"attributes,omitempty"`
			MessageID   string            `json:"messageId"`
			PublishTime string            `json:"publishTime"`
		}{
			Data:      base64.StdEncoding.EncodeToString(payload),
			MessageID: "m-1",
		},
		Subscription: "projects/test/subscriptions/device-events",
	})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_SendsTopicNotification(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	userID := uuid.New()
	event := &service.DeviceEvent{
		EventType:  service.DeviceEventOffline,
		UserID:     userID.String(),
		DeviceID:   uuid.New().String(),
		DeviceName: "客廳助手",
		OccurredAt: time.Now(),
	}

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, "user-"+userID.String(), "設備已離線", mock.AnythingOfType("string"), mock.MatchedBy(func(data map[string]string) bool {
			return data["event_type"] == service.DeviceEventOffline && data["device_name"] == "客廳助手"
		})).
		Return(nil)

	c, rec := pushRequest(t, event)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableFailure(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	event := &service.DeviceEvent{
		EventType:  service.DeviceEventRegistered,
		UserID:     uuid.New().String(),
		DeviceID:   uuid.New().String(),
		DeviceName: "臥室助手",
		OccurredAt: time.Now(),
	}

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(errors.New("messaging backend unavailable"))

	c, rec := pushRequest(t, event)
	require.NoError(t, h.HandlePush(c))

	// 503 asks Pub/Sub to redeliver the message.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_UnknownEventTypeIsAcked(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	event := &service.DeviceEvent{
		EventType:  "device.unknown",
		UserID:     uuid.New().String(),
		DeviceID:   uuid.New().String(),
		OccurredAt: time.Now(),
	}

	c, rec := pushRequest(t, event)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	notificationSvc.AssertNotCalled(t, "SendTopicNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPushHandler_HandlePush_MalformedUserIDIsAcked(t *testing.T) {
	h, _ := newTestPushHandler(t)

	event := &service.DeviceEvent{
		EventType:  service.DeviceEventRemoved,
		UserID:     "not-a-uuid",
		DeviceID:   uuid.New().String(),
		OccurredAt: time.Now(),
	}

	// A malformed event can never succeed, so it is acked instead of retried.
	c, rec := pushRequest(t, event)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	h, _ := newTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
