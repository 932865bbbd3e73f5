package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nexonbooks/docintake/constants"
	"github.com/nexonbooks/docintake/gen/ent"
	"github.com/nexonbooks/docintake/gen/ent/invoice"
	"github.com/nexonbooks/docintake/internal/entity"
)

// InvoiceRepository satisfies pipeline.InvoiceStore. List returns the full
// workspace set because duplicate detection scans every prior invoice;
// ListByPeriod backs the export surface.
type InvoiceRepository interface {
	List(ctx context.Context, workspaceID uuid.UUID) ([]entity.Invoice, error)
	ListByPeriod(ctx context.Context, workspaceID uuid.UUID, fromDate, toDate *time.Time) ([]entity.Invoice, error)
	Create(ctx context.Context, inv entity.Invoice) (uuid.UUID, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) List(ctx context.Context, workspaceID uuid.UUID) ([]entity.Invoice, error) {
	return r.ListByPeriod(ctx, workspaceID, nil, nil)
}

func (r *invoiceRepository) ListByPeriod(ctx context.Context, workspaceID uuid.UUID, fromDate, toDate *time.Time) ([]entity.Invoice, error) {
	q := r.client.Invoice.Query().Where(invoice.WorkspaceID(workspaceID))
	if fromDate != nil {
		q = q.Where(invoice.InvoiceDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoice.InvoiceDateLTE(*toDate))
	}
	recs, err := q.Order(invoice.ByInvoiceDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "workspace_id", workspaceID, "error", err)
		return nil, err
	}

	result := make([]entity.Invoice, len(recs))
	for i, rec := range recs {
		result[i] = toInvoice(rec)
	}
	return result, nil
}

func (r *invoiceRepository) Create(ctx context.Context, inv entity.Invoice) (uuid.UUID, error) {
	builder := r.client.Invoice.Create().
		SetWorkspaceID(inv.WorkspaceID).
		SetCustomerID(inv.CustomerID).
		SetInvoiceNumber(inv.InvoiceNumber).
		SetInvoiceDate(inv.Date).
		SetInvoiceType(invoice.InvoiceType(inv.InvoiceType)).
		SetAmountExclVat(inv.AmountExclVAT).
		SetAmountInclVat(inv.AmountInclVAT).
		SetVatAmount(inv.VATAmount).
		SetVatRate(inv.VATRate)

	if len(inv.LineItems) > 0 {
		raw, err := json.Marshal(inv.LineItems)
		if err != nil {
			return uuid.Nil, err
		}
		builder = builder.SetLineItems(raw)
	}
	if inv.FilePath != "" {
		builder = builder.SetFilePath(inv.FilePath)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice",
			"workspace_id", inv.WorkspaceID, "invoice_number", inv.InvoiceNumber, "error", err)
		return uuid.Nil, err
	}
	return rec.ID, nil
}

func toInvoice(rec *ent.Invoice) entity.Invoice {
	inv := entity.Invoice{
		ID:            rec.ID,
		WorkspaceID:   rec.WorkspaceID,
		CustomerID:    rec.CustomerID,
		InvoiceNumber: rec.InvoiceNumber,
		Date:          rec.InvoiceDate,
		InvoiceType:   constants.InvoiceType(rec.InvoiceType),
		AmountExclVAT: rec.AmountExclVat,
		AmountInclVAT: rec.AmountInclVat,
		VATAmount:     rec.VatAmount,
		VATRate:       rec.VatRate,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if len(rec.LineItems) > 0 {
		// Malformed rows keep LineItems nil rather than failing the read.
		_ = json.Unmarshal(rec.LineItems, &inv.LineItems)
	}
	if rec.FilePath != nil {
		inv.FilePath = *rec.FilePath
	}
	return inv
}
