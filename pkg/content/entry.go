package content

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one stored row of a content kind.
// ID is the stable key assigned at creation; Position is only meaningful
// for entries returned by Get or List.
type Entry struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Content   string
	ID        uuid.UUID
	Position  Position
	Kind      Kind
}
