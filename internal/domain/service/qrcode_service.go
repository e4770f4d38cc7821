package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePairingQR generates a QR code used to pair a device with the mobile app
	GeneratePairingQR(deviceID uuid.UUID) ([]byte, error)

	// ParsePairingQR parses QR code data and returns the device ID
	ParsePairingQR(qrData string) (uuid.UUID, error)
}
