package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a counterparty record for data transfer between layers.
// Income invoices point at customers, expense invoices at suppliers; both
// live in the same table and are scoped to a workspace.
type Customer struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	VATNumber   string    `json:"vat_number"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
