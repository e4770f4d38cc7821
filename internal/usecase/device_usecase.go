package usecase

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
)

// AddDeviceInput defines the data required to bind a new device.
type AddDeviceInput struct {
	Name        string
	MAC         string
	Category    entity.DeviceCategory
	Description string
}

// UpdateDeviceInput carries the mutable device fields. Nil means unchanged.
type UpdateDeviceInput struct {
	Name        *string
	Category    *entity.DeviceCategory
	Description *string
}

// DeleteDevicesOutput reports the result of a bulk delete.
type DeleteDevicesOutput struct {
	Requested int
	Deleted   int
}

// DeviceUsecase defines the interface for device management use cases.
type DeviceUsecase interface {
	// ListDevices fetches the user's devices from storage and replaces the
	// in-memory snapshot with the result.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// GetDevice returns a single device, served from the snapshot when
	// loaded and from storage otherwise.
	GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error)

	// AddDevice validates and binds a new device to the user.
	AddDevice(ctx context.Context, userID uuid.UUID, input AddDeviceInput) (*entity.Device, error)

	// UpdateDevice applies a partial update to a device the user owns.
	UpdateDevice(ctx context.Context, userID, deviceID uuid.UUID, input UpdateDeviceInput) (*entity.Device, error)

	// DeleteDevice unbinds a single device and its installed skills.
	DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error

	// DeleteDevices unbinds a batch of devices in one operation. Unknown IDs
	// are skipped, not reported as errors.
	DeleteDevices(ctx context.Context, userID uuid.UUID, deviceIDs []uuid.UUID) (*DeleteDevicesOutput, error)

	// GetConfigLogs returns the configuration change history of a device.
	GetConfigLogs(ctx context.Context, userID, deviceID uuid.UUID) ([]*entity.ConfigLogEntry, error)

	// ExportDevicesCSV renders the user's devices as a CSV document.
	ExportDevicesCSV(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// GeneratePairingQR produces the QR code used to pair a device with the
	// mobile app.
	GeneratePairingQR(ctx context.Context, userID, deviceID uuid.UUID) ([]byte, error)
}
