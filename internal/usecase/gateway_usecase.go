package usecase

import (
	"context"

	"clawdeck/internal/domain/entity"

	"github.com/google/uuid"
)

// HeartbeatInput is the telemetry payload a device gateway reports for one
// device. Utilization values are percentages in the 0-100 range.
type HeartbeatInput struct {
	MAC           string
	Status        entity.DeviceStatus
	IP            string
	CPU           int
	Memory        int
	Disk          int
	UptimeSeconds int64
}

// GatewayUsecase defines the interface for device-facing gateway use cases.
type GatewayUsecase interface {
	// ReportHeartbeat records a telemetry report for a device identified by
	// its MAC address. The device must belong to the given user.
	ReportHeartbeat(ctx context.Context, userID uuid.UUID, input HeartbeatInput) (*entity.Device, error)
}
