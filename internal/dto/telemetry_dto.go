package dto

import "time"

// TelemetryMessage is the wire form of a telemetry event on the in-process
// bus.
type TelemetryMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
