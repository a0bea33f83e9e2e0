package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation of the hierarchy. ActorID is the platform user
// id of the administrator, empty for maintenance commands.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    string
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
