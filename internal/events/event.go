package events

import (
	"Bagged/internal/models"
	"time"

	"github.com/google/uuid"
)

const (
	CuboidCreated = "cuboid.created"
	CuboidUpdated = "cuboid.updated"
	CuboidDeleted = "cuboid.deleted"
)

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Cuboid     *models.Cuboid `json:"cuboid"`
}

func NewCuboidEvent(eventType string, cuboid *models.Cuboid) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Cuboid:     cuboid,
	}
}
