package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/nexonbooks/docintake/constants"
)

// LineItem is a single invoice line. Optional; most intake paths produce none.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	VATRate     float64 `json:"vat_rate"`
}

// Invoice represents a persisted invoice for data transfer between layers.
type Invoice struct {
	ID            uuid.UUID             `json:"id"`
	WorkspaceID   uuid.UUID             `json:"workspace_id"`
	CustomerID    uuid.UUID             `json:"customer_id"`
	InvoiceNumber string                `json:"invoice_number"`
	Date          time.Time             `json:"date"`
	InvoiceType   constants.InvoiceType `json:"invoice_type"`
	AmountExclVAT float64               `json:"amount_excl_vat"`
	AmountInclVAT float64               `json:"amount_incl_vat"`
	VATAmount     float64               `json:"vat_amount"`
	VATRate       float64               `json:"vat_rate"`
	LineItems     []LineItem            `json:"line_items,omitempty"`
	FilePath      string                `json:"file_path,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
