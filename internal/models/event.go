package models

import "time"

// Routing keys of published domain events.
const (
	EventRecommendationCreated = "rekomendasi.created"
	EventGardenCreated         = "manajemen.created"
	EventGardenUpdated         = "manajemen.updated"
	EventGardenDeleted         = "manajemen.deleted"
	EventUserUpdated           = "user.updated"
)

// Event is the JSON body published for every domain change.
type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	EntityID   string    `json:"entity_id"`
	Family     string    `json:"family,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
