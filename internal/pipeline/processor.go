// Package pipeline wires text extraction, classification, field
// extraction, counterparty resolution, and duplicate detection into a
// single disposition per uploaded file.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexonbooks/docintake/constants"
	"github.com/nexonbooks/docintake/internal/ai"
	"github.com/nexonbooks/docintake/internal/classify"
	"github.com/nexonbooks/docintake/internal/entity"
	"github.com/nexonbooks/docintake/internal/extract"
	"github.com/nexonbooks/docintake/internal/resolver"
)

const (
	reasonUnknownType   = "unknown document type"
	reasonBankStatement = "bank statement requires manual matching to invoices"
	reasonLowConfidence = "needs manual review"
)

// Processor coordinates the intake stages and routes each document to a
// terminal disposition.
type Processor struct {
	Logger     *slog.Logger
	Text       TextSource
	Classifier *classify.Classifier
	Extractor  *extract.Extractor
	AI         ai.FieldSource // nil means heuristics only
	Resolver   *resolver.CounterpartyResolver
	Duplicates *resolver.DuplicateDetector
	Customers  CustomerStore
	Invoices   InvoiceStore
	Reviews    ReviewSink

	// Threshold gates auto-commit; matches below it queue for review.
	Threshold float64

	// workspace-scoped lock around the duplicate-check-then-create
	// critical section
	locks sync.Map
}

func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Threshold: 0.9}
}

func (p *Processor) workspaceLock(workspaceID uuid.UUID) *sync.Mutex {
	mu, _ := p.locks.LoadOrStore(workspaceID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ProcessFile runs the full pipeline for one file and returns its
// disposition. Per-stage failures degrade rather than abort: only a
// text-source error produces an Error outcome, and a persistence
// failure downgrades a tentative Created to manual review.
func (p *Processor) ProcessFile(ctx context.Context, workspaceID uuid.UUID, filePath string) Outcome {
	fileName := filepath.Base(filePath)

	res, err := p.Text.Extract(ctx, filePath)
	if err != nil {
		p.Logger.Error("pipeline.textsource.failed", "file", fileName, "error", err)
		return errorOutcome(filePath, "text extraction failed: "+err.Error())
	}

	cls := p.Classifier.Classify(fileName, res.Text)
	p.Logger.Info("pipeline.classified",
		"file", fileName,
		"type", cls.Type,
		"confidence", cls.Confidence)

	doc := p.Extractor.Extract(cls.Type, fileName, filePath, res.Text)
	doc = p.applyAI(ctx, doc, fileName, filePath, res.Text)

	switch d := doc.(type) {
	case *extract.UnknownDocument:
		return p.queueReview(ctx, workspaceID, filePath, reasonUnknownType, nil)
	case *extract.BankStatementCandidate:
		return p.queueReview(ctx, workspaceID, filePath, reasonBankStatement, marshalPartial(d))
	case *extract.InvoiceCandidate:
		return p.resolveInvoice(ctx, workspaceID, filePath, d)
	default:
		return p.queueReview(ctx, workspaceID, filePath, reasonUnknownType, nil)
	}
}

// applyAI lets the configured model supersede heuristic fields. Model
// errors are logged and swallowed: the heuristic candidate stands.
func (p *Processor) applyAI(ctx context.Context, doc extract.Document, fileName, filePath, text string) extract.Document {
	if p.AI == nil || text == "" {
		return doc
	}
	fields, _, err := p.AI.ExtractFields(ctx, text, fileName)
	if err != nil {
		p.Logger.Warn("pipeline.ai.failed", "file", fileName, "error", err)
		return doc
	}

	if fields.DocumentType != string(constants.DocTypeInvoice) {
		return doc
	}
	cand, ok := doc.(*extract.InvoiceCandidate)
	if !ok {
		// The model recognized an invoice the heuristics missed;
		// rebuild the candidate on the invoice path before merging.
		cand, ok = p.Extractor.Extract(constants.DocTypeInvoice, fileName, filePath, text).(*extract.InvoiceCandidate)
		if !ok {
			return doc
		}
	}
	ai.MergeInvoice(cand, fields)
	return cand
}

// resolveInvoice is the duplicate-check-then-create critical section,
// serialized per workspace.
func (p *Processor) resolveInvoice(ctx context.Context, workspaceID uuid.UUID, filePath string, cand *extract.InvoiceCandidate) Outcome {
	mu := p.workspaceLock(workspaceID)
	mu.Lock()
	defer mu.Unlock()

	customers, err := p.Customers.List(ctx, workspaceID)
	if err != nil {
		p.Logger.Error("pipeline.customers.list_failed", "error", err)
		return p.queueReview(ctx, workspaceID, filePath, "counterparty lookup failed: "+err.Error(), partialFromInvoice(cand))
	}
	match := p.Resolver.Resolve(cand.Counterparty, customers)

	counterpartyID := match.ID
	if counterpartyID == nil {
		// No match at all: create the record. The threshold only gates
		// whether the invoice below is auto-committed.
		id, err := p.createCounterparty(ctx, workspaceID, cand.Counterparty)
		if err != nil {
			p.Logger.Error("pipeline.customers.create_failed", "error", err)
			return p.queueReview(ctx, workspaceID, filePath, "counterparty creation failed: "+err.Error(), partialFromInvoice(cand))
		}
		counterpartyID = &id
	}

	invoices, err := p.Invoices.List(ctx, workspaceID)
	if err != nil {
		p.Logger.Error("pipeline.invoices.list_failed", "error", err)
		return p.queueReview(ctx, workspaceID, filePath, "duplicate check failed: "+err.Error(), partialFromInvoice(cand))
	}
	if dup := p.Duplicates.FindDuplicate(cand, counterpartyID, invoices); dup != nil {
		p.Logger.Info("pipeline.duplicate", "file", filePath, "existing_invoice", *dup)
		return duplicateFlagged(filePath, *dup, "duplicate of invoice "+cand.InvoiceNumber)
	}

	if match.Confidence < p.Threshold {
		return p.queueReview(ctx, workspaceID, filePath, reasonLowConfidence, partialFromInvoice(cand))
	}

	invoiceID, err := p.createInvoice(ctx, workspaceID, *counterpartyID, cand)
	if err != nil {
		// A tentative Created downgrades on persistence failure.
		p.Logger.Error("pipeline.invoices.create_failed", "error", err)
		return p.queueReview(ctx, workspaceID, filePath, "invoice creation failed: "+err.Error(), partialFromInvoice(cand))
	}

	p.Logger.Info("pipeline.created",
		"file", filePath,
		"invoice_id", invoiceID,
		"invoice_number", cand.InvoiceNumber)
	return created(filePath, invoiceID)
}

// createCounterparty fills the placeholder fields persistence requires.
func (p *Processor) createCounterparty(ctx context.Context, workspaceID uuid.UUID, c extract.CounterpartyCandidate) (uuid.UUID, error) {
	name := c.Name
	if name == "" {
		name = extract.PlaceholderCounterpartyName()
	}
	email := c.Email
	if email == "" {
		email = extract.PlaceholderEmail(name)
	}
	address := c.Address
	if address == "" {
		address = extract.PlaceholderAddress()
	}
	return p.Customers.Create(ctx, entity.Customer{
		WorkspaceID: workspaceID,
		Name:        name,
		Address:     address,
		VATNumber:   c.VATNumber,
		Email:       email,
	})
}

func (p *Processor) createInvoice(ctx context.Context, workspaceID, customerID uuid.UUID, cand *extract.InvoiceCandidate) (uuid.UUID, error) {
	date, err := time.Parse("2006-01-02", cand.Date)
	if err != nil {
		return uuid.Nil, err
	}

	inv := entity.Invoice{
		WorkspaceID:   workspaceID,
		CustomerID:    customerID,
		InvoiceNumber: cand.InvoiceNumber,
		Date:          date,
		InvoiceType:   cand.InvoiceType,
		LineItems:     cand.LineItems,
		FilePath:      cand.SourceFile,
	}
	inv.VATRate, _ = cand.VATRate.Float64()
	if cand.AmountInclVAT != nil {
		inv.AmountInclVAT, _ = cand.AmountInclVAT.Float64()
	}
	if cand.AmountExclVAT != nil {
		inv.AmountExclVAT, _ = cand.AmountExclVAT.Float64()
	}
	if cand.VATAmount != nil {
		inv.VATAmount, _ = cand.VATAmount.Float64()
	}
	return p.Invoices.Create(ctx, inv)
}

func (p *Processor) queueReview(ctx context.Context, workspaceID uuid.UUID, filePath, reason string, partial []byte) Outcome {
	item := entity.ReviewItem{
		WorkspaceID: workspaceID,
		FilePath:    filePath,
		Reason:      reason,
		PartialData: partial,
	}
	if err := p.Reviews.Add(ctx, item); err != nil {
		p.Logger.Error("pipeline.review.enqueue_failed", "file", filePath, "error", err)
	}
	return manualReview(filePath, reason, partial)
}
