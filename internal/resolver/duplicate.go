package resolver

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexonbooks/docintake/internal/entity"
	"github.com/nexonbooks/docintake/internal/extract"
)

// amountEpsilon is the exclusive bound for the composite near-match:
// a difference of 0.009 is a duplicate, 0.011 is not.
var amountEpsilon = decimal.RequireFromString("0.01")

// DuplicateDetector decides whether a candidate invoice already exists
// in the workspace. It must run before any invoice-creation side effect.
type DuplicateDetector struct {
	logger *slog.Logger
}

func NewDuplicateDetector(logger *slog.Logger) *DuplicateDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &DuplicateDetector{logger: logger}
}

// FindDuplicate returns the id of an existing duplicate, or nil.
// An identical invoice number is always a duplicate regardless of
// amount or date. The composite near-match (same counterparty, same
// date, amount within epsilon) only runs when all three are known.
func (d *DuplicateDetector) FindDuplicate(cand *extract.InvoiceCandidate, counterpartyID *uuid.UUID, existing []entity.Invoice) *uuid.UUID {
	for i := range existing {
		if existing[i].InvoiceNumber == cand.InvoiceNumber {
			d.logger.Debug("duplicate.exact", "invoice_id", existing[i].ID, "invoice_number", cand.InvoiceNumber)
			return &existing[i].ID
		}
	}

	if counterpartyID == nil || cand.Date == "" || cand.AmountInclVAT == nil {
		return nil
	}

	for i := range existing {
		if existing[i].CustomerID != *counterpartyID {
			continue
		}
		if existing[i].Date.Format("2006-01-02") != cand.Date {
			continue
		}
		diff := decimal.NewFromFloat(existing[i].AmountInclVAT).Sub(*cand.AmountInclVAT).Abs()
		if diff.LessThan(amountEpsilon) {
			d.logger.Debug("duplicate.composite", "invoice_id", existing[i].ID, "date", cand.Date)
			return &existing[i].ID
		}
	}
	return nil
}
