package handler

import (
	"net/http"
	"testing"

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

func newTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)

	h := NewDeviceHandler(DeviceHandlerParams{
		DeviceUC: deviceUC,
		Logger:   newDiscardLogger(),
	})

	return h, deviceUC
}

func TestDeviceHandler_ListDevices(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	userID := uuid.New()

	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, Name: "客廳助手", MAC: "AA:BB:CC:DD:EE:01", Status: entity.DeviceStatusOnline},
	}
	deviceUC.EXPECT().ListDevices(mock.Anything, userID).Return(devices, nil)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/devices", "")
	authenticate(c, userID)

	require.NoError(t, h.ListDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "客廳助手")
}

func TestDeviceHandler_ListDevices_Unauthenticated(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/devices", "")

	require.NoError(t, h.ListDevices(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	deviceUC.AssertNotCalled(t, "ListDevices", mock.Anything, mock.Anything)
}

func TestDeviceHandler_GetDevice_InvalidID(t *testing.T) {
	h, _ := newTestDeviceHandler(t)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/devices/not-a-uuid", "")
	authenticate(c, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestDeviceHandler_AddDevice(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	userID := uuid.New()

	created := &entity.Device{ID: uuid.New(), UserID: userID, Name: "書房助手", MAC: "AA:BB:CC:DD:EE:02"}
	deviceUC.EXPECT().
		AddDevice(mock.Anything, userID, usecase.AddDeviceInput{
			Name:     "書房助手",
			MAC:      "AA:BB:CC:DD:EE:02",
			Category: entity.DeviceCategoryPersonal,
		}).
		Return(created, nil)

	body := `{"name":"書房助手","mac":"AA:BB:CC:DD:EE:02","category":"personal"}`
	c, rec := newHandlerContext(t, http.MethodPost, "/api/v1/devices", body)
	authenticate(c, userID)

	require.NoError(t, h.AddDevice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestDeviceHandler_AddDevice_ValidationError(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/v1/devices", `{"name":"沒有位址"}`)
	authenticate(c, uuid.New())

	require.NoError(t, h.AddDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	deviceUC.AssertNotCalled(t, "AddDevice", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeviceHandler_DeleteDevice_NotFound(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	userID := uuid.New()
	deviceID := uuid.New()

	deviceUC.EXPECT().DeleteDevice(mock.Anything, userID, deviceID).Return(domainerrors.ErrDeviceNotFound)

	c, rec := newHandlerContext(t, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "")
	authenticate(c, userID)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, h.DeleteDevice(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEVICE_NOT_FOUND")
}

func TestDeviceHandler_DeleteDevices(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	deviceUC.EXPECT().
		DeleteDevices(mock.Anything, userID, ids).
		Return(&usecase.DeleteDevicesOutput{Requested: 2, Deleted: 1}, nil)

	body := `{"device_ids":["` + ids[0].String() + `","` + ids[1].String() + `"]}`
	c, rec := newHandlerContext(t, http.MethodPost, "/api/v1/devices/bulk-delete", body)
	authenticate(c, userID)

	require.NoError(t, h.DeleteDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requested":2`)
	assert.Contains(t, rec.Body.String(), `"deleted":1`)
}

func TestDeviceHandler_ExportDevices(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	userID := uuid.New()

	csv := "name,mac,status\n客廳助手,AA:BB:CC:DD:EE:01,online\n"
	deviceUC.EXPECT().ExportDevicesCSV(mock.Anything, userID).Return([]byte(csv), nil)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/devices/export", "")
	authenticate(c, userID)

	require.NoError(t, h.ExportDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	assert.Equal(t, csv, rec.Body.String())
}

func TestDeviceHandler_GetPairingQR(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	userID := uuid.New()
	deviceID := uuid.New()

	png := []byte{0x89, 'P', 'N', 'G'}
	deviceUC.EXPECT().GeneratePairingQR(mock.Anything, userID, deviceID).Return(png, nil)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/pairing-qr", "")
	authenticate(c, userID)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, h.GetPairingQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "image/png")
	assert.Equal(t, png, rec.Body.Bytes())
}
