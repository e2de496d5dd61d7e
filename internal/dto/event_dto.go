package dto

import "time"

// EngagementEventMessage is the payload carried on the in-process
// engagement topic between services and the consumer.
type EngagementEventMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
