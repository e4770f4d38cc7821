package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clawdeck/internal/delivery/api/validator"
	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	mockUC "clawdeck/internal/mocks/usecase"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHeartbeatHandler(t *testing.T) (*HeartbeatHandler, *mockUC.MockGatewayUsecase) {
	gatewayUC := mockUC.NewMockGatewayUsecase(t)

	h := NewHeartbeatHandler(HeartbeatHandlerParams{
		GatewayUC: gatewayUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, gatewayUC
}

func heartbeatContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/gateway/v1/heartbeat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHeartbeatHandler_ReportHeartbeat(t *testing.T) {
	h, gatewayUC := newTestHeartbeatHandler(t)
	userID := uuid.New()

	device := &entity.Device{
		ID:           uuid.New(),
		UserID:       userID,
		MAC:          "AA:BB:CC:DD:EE:01",
		Status:       entity.DeviceStatusOnline,
		LastActiveAt: time.Now(),
	}
	gatewayUC.EXPECT().
		ReportHeartbeat(mock.Anything, userID, usecase.HeartbeatInput{
			MAC:           "AA:BB:CC:DD:EE:01",
			Status:        entity.DeviceStatusOnline,
			IP:            "192.168.1.20",
			CPU:           37,
			Memory:        58,
			Disk:          61,
			UptimeSeconds: 86400,
		}).
		Return(device, nil)

	body := `{"mac":"AA:BB:CC:DD:EE:01","status":"online","ip":"192.168.1.20","cpu":37,"memory":58,"disk":61,"uptime_seconds":86400}`
	c, rec := heartbeatContext(t, body)
	c.Set("userID", userID)

	require.NoError(t, h.ReportHeartbeat(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), device.ID.String())
	assert.Contains(t, rec.Body.String(), `"status":"online"`)
}

func TestHeartbeatHandler_ReportHeartbeat_MissingAPIKeyOwner(t *testing.T) {
	h, gatewayUC := newTestHeartbeatHandler(t)

	c, rec := heartbeatContext(t, `{"mac":"AA:BB:CC:DD:EE:01"}`)

	require.NoError(t, h.ReportHeartbeat(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	gatewayUC.AssertNotCalled(t, "ReportHeartbeat", mock.Anything, mock.Anything, mock.Anything)
}

func TestHeartbeatHandler_ReportHeartbeat_InvalidTelemetry(t *testing.T) {
	h, gatewayUC := newTestHeartbeatHandler(t)

	// CPU above 100 percent fails struct validation before the usecase runs.
	c, rec := heartbeatContext(t, `{"mac":"AA:BB:CC:DD:EE:01","cpu":150}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.ReportHeartbeat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	gatewayUC.AssertNotCalled(t, "ReportHeartbeat", mock.Anything, mock.Anything, mock.Anything)
}

func TestHeartbeatHandler_ReportHeartbeat_UnknownDevice(t *testing.T) {
	h, gatewayUC := newTestHeartbeatHandler(t)
	userID := uuid.New()

	gatewayUC.EXPECT().
		ReportHeartbeat(mock.Anything, userID, mock.AnythingOfType("usecase.HeartbeatInput")).
		Return(nil, domainerrors.ErrDeviceNotFound)

	c, rec := heartbeatContext(t, `{"mac":"AA:BB:CC:DD:EE:99"}`)
	c.Set("userID", userID)

	require.NoError(t, h.ReportHeartbeat(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEVICE_NOT_FOUND")
}
