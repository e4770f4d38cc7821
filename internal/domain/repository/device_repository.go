// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDeviceMAC is returned when a device with the same MAC address already exists.
	ErrDuplicateDeviceMAC = errors.New("device MAC address already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDevicesByUser retrieves all devices belonging to a specific user,
	// newest first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// FindDeviceByMAC retrieves a user's device by its MAC address. The MAC
	// is expected in canonical uppercase form.
	FindDeviceByMAC(ctx context.Context, userID uuid.UUID, mac string) (*entity.Device, error)

	// UpdateDeviceFields applies a partial update to a device. Only the columns
	// named in fields are written; everything else is left untouched.
	UpdateDeviceFields(ctx context.Context, id uuid.UUID, fields map[string]any) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevices removes a batch of devices by their IDs (soft delete).
	// IDs that do not exist are skipped, not reported as errors.
	DeleteDevices(ctx context.Context, ids []uuid.UUID) error

	// CountDevicesByUser returns the number of devices a user owns.
	CountDevicesByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// AppendConfigLog records a configuration change for a device.
	AppendConfigLog(ctx context.Context, log *entity.ConfigLogEntry) error

	// FindConfigLogsByDevice retrieves the configuration change history of a
	// device, newest first.
	FindConfigLogsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.ConfigLogEntry, error)
}
