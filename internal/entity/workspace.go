package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workspace represents a tenant. All customers, invoices and review items
// are scoped to exactly one workspace.
type Workspace struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
