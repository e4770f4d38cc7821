package service

import (
	"context"
	"time"
)

// Device event types published to the message queue.
const (
	DeviceEventRegistered   = "device.registered"
	DeviceEventUpdated      = "device.updated"
	DeviceEventRemoved      = "device.removed"
	DeviceEventSkillChanged = "device.skill_changed"
	DeviceEventOnline       = "device.online"
	DeviceEventOffline      = "device.offline"
)

// DeviceEvent represents a device lifecycle event for async consumers
// such as the usage metering worker.
type DeviceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	DeviceID   string    `json:"device_id"`
	DeviceName string    `json:"device_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeviceEvent publishes a device lifecycle event for async processing
	PublishDeviceEvent(ctx context.Context, event *DeviceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
