package pipeline

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/nexonbooks/docintake/constants"
	"github.com/nexonbooks/docintake/internal/extract"
)

// Outcome is the terminal result for one processed file. Produced once,
// never mutated; every uploaded file yields exactly one.
type Outcome struct {
	Disposition constants.Disposition
	FilePath    string

	// InvoiceID is set for Created, ExistingInvoiceID for Duplicate.
	InvoiceID         *uuid.UUID
	ExistingInvoiceID *uuid.UUID

	// Reason is the human-readable explanation for review and error
	// dispositions, and the duplicate link description.
	Reason string

	PartialData json.RawMessage
}

func created(filePath string, id uuid.UUID) Outcome {
	return Outcome{Disposition: constants.DispositionCreated, FilePath: filePath, InvoiceID: &id}
}

func duplicateFlagged(filePath string, existing uuid.UUID, reason string) Outcome {
	return Outcome{Disposition: constants.DispositionDuplicate, FilePath: filePath, ExistingInvoiceID: &existing, Reason: reason}
}

func manualReview(filePath, reason string, partial json.RawMessage) Outcome {
	return Outcome{Disposition: constants.DispositionManualReview, FilePath: filePath, Reason: reason, PartialData: partial}
}

func errorOutcome(filePath, message string) Outcome {
	return Outcome{Disposition: constants.DispositionError, FilePath: filePath, Reason: message}
}

// invoicePartial is the review-queue snapshot of an invoice candidate.
type invoicePartial struct {
	InvoiceNumber string                        `json:"invoice_number"`
	Date          string                        `json:"date"`
	AmountInclVAT string                        `json:"amount_incl_vat,omitempty"`
	AmountExclVAT string                        `json:"amount_excl_vat,omitempty"`
	VATAmount     string                        `json:"vat_amount,omitempty"`
	VATRate       string                        `json:"vat_rate"`
	InvoiceType   string                        `json:"invoice_type"`
	Counterparty  extract.CounterpartyCandidate `json:"counterparty"`
	Confidence    float64                       `json:"confidence"`
}

func partialFromInvoice(cand *extract.InvoiceCandidate) json.RawMessage {
	p := invoicePartial{
		InvoiceNumber: cand.InvoiceNumber,
		Date:          cand.Date,
		VATRate:       cand.VATRate.String(),
		InvoiceType:   string(cand.InvoiceType),
		Counterparty:  cand.Counterparty,
		Confidence:    cand.ExtractionConfidence,
	}
	if cand.AmountInclVAT != nil {
		p.AmountInclVAT = cand.AmountInclVAT.String()
	}
	if cand.AmountExclVAT != nil {
		p.AmountExclVAT = cand.AmountExclVAT.String()
	}
	if cand.VATAmount != nil {
		p.VATAmount = cand.VATAmount.String()
	}
	return marshalPartial(p)
}
