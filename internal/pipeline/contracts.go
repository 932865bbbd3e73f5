package pipeline

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/nexonbooks/docintake/internal/entity"
	"github.com/nexonbooks/docintake/internal/textsource"
)

// TextSource is Stage 1: file -> text. An empty Result.Text with a nil
// error is valid (unreadable scans degrade to filename-only intake).
type TextSource interface {
	Extract(ctx context.Context, path string) (textsource.Result, error)
}

// CustomerStore reads and creates counterparty records for a workspace.
type CustomerStore interface {
	List(ctx context.Context, workspaceID uuid.UUID) ([]entity.Customer, error)
	Create(ctx context.Context, c entity.Customer) (uuid.UUID, error)
}

// InvoiceStore reads and creates invoices for a workspace.
type InvoiceStore interface {
	List(ctx context.Context, workspaceID uuid.UUID) ([]entity.Invoice, error)
	Create(ctx context.Context, inv entity.Invoice) (uuid.UUID, error)
}

// ReviewSink queues documents for manual handling. Purely additive; no
// dedup of review entries is required.
type ReviewSink interface {
	Add(ctx context.Context, item entity.ReviewItem) error
}

// marshalPartial renders best-effort JSON for review entries; a marshal
// failure yields null rather than blocking the review row.
func marshalPartial(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}
