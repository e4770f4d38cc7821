package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	deviceID := uuid.New()

	qrBytes, err := service.GeneratePairingQR(deviceID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParsePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	deviceID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		DeviceID: deviceID.String(),
		Type:     "pairing",
	})
	require.NoError(t, err)

	parsed, err := service.ParsePairingQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, deviceID, parsed)
}

func TestQRCodeService_ParsePairingQR_InvalidInputs(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"not json", "not-json-at-all"},
		{"wrong type", `{"device_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{"bad uuid", `{"device_id":"not-a-uuid","type":"pairing"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePairingQR(tt.qrData)
			assert.Error(t, err)
		})
	}
}

func TestQRCodeService_GenerateParseRoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	deviceID := uuid.New()

	// The QR payload is the JSON document encoded in the image; scanning the
	// PNG is out of scope here, so round-trip through the payload directly.
	payload, err := json.Marshal(QRCodeData{DeviceID: deviceID.String(), Type: "pairing"})
	require.NoError(t, err)

	parsed, err := service.ParsePairingQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, deviceID, parsed)

	qrBytes, err := service.GeneratePairingQR(deviceID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
