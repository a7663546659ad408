package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RETRY_CLICKED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Telemetry event codes emitted by the styling core. Fire-and-forget:
// emission never blocks or fails a resolution.
const (
	TypeResolutionFailure = "RESOLUTION_FAILURE"
	TypeRetryClicked      = "RETRY_CLICKED"
)

// NewResolutionFailure describes a tip sheet that resolved to nothing.
func NewResolutionFailure(topic, category, vibeLine, reason, errorKind string) BaseEvent {
	return BaseEvent{
		Type: TypeResolutionFailure,
		Data: map[string]interface{}{
			"topic":      topic,
			"category":   category,
			"vibes":      vibeLine,
			"reason":     reason,
			"error_kind": errorKind,
		},
		OccurredAt: time.Now(),
	}
}

// NewRetryClicked records a user-triggered library retry.
func NewRetryClicked(topic, category, errorKind string) BaseEvent {
	return BaseEvent{
		Type: TypeRetryClicked,
		Data: map[string]interface{}{
			"topic":      topic,
			"category":   category,
			"error_kind": errorKind,
		},
		OccurredAt: time.Now(),
	}
}
