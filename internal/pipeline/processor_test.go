package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nexonbooks/docintake/constants"
	"github.com/nexonbooks/docintake/internal/classify"
	"github.com/nexonbooks/docintake/internal/entity"
	"github.com/nexonbooks/docintake/internal/extract"
	"github.com/nexonbooks/docintake/internal/resolver"
	"github.com/nexonbooks/docintake/internal/textsource"
)

type fakeText struct {
	texts map[string]string
	errs  map[string]error
}

func (f *fakeText) Extract(_ context.Context, path string) (textsource.Result, error) {
	if err := f.errs[path]; err != nil {
		return textsource.Result{}, err
	}
	return textsource.Result{Text: f.texts[path]}, nil
}

type fakeCustomers struct {
	records   []entity.Customer
	createErr error
}

func (f *fakeCustomers) List(_ context.Context, _ uuid.UUID) ([]entity.Customer, error) {
	return f.records, nil
}

func (f *fakeCustomers) Create(_ context.Context, c entity.Customer) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	c.ID = uuid.New()
	f.records = append(f.records, c)
	return c.ID, nil
}

type fakeInvoices struct {
	records   []entity.Invoice
	createErr error
}

func (f *fakeInvoices) List(_ context.Context, _ uuid.UUID) ([]entity.Invoice, error) {
	return f.records, nil
}

func (f *fakeInvoices) Create(_ context.Context, inv entity.Invoice) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	inv.ID = uuid.New()
	f.records = append(f.records, inv)
	return inv.ID, nil
}

type fakeReviews struct {
	items []entity.ReviewItem
}

func (f *fakeReviews) Add(_ context.Context, item entity.ReviewItem) error {
	f.items = append(f.items, item)
	return nil
}

var testNow = func() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestProcessor(text *fakeText, customers *fakeCustomers, invoices *fakeInvoices, reviews *fakeReviews) *Processor {
	p := NewProcessor(nil)
	p.Text = text
	p.Classifier = classify.NewClassifier(classify.DefaultKeywordTable(), 0, nil)
	p.Extractor = extract.NewExtractor(nil, 0, testNow, nil)
	p.Resolver = resolver.NewCounterpartyResolver(nil)
	p.Duplicates = resolver.NewDuplicateDetector(nil)
	p.Customers = customers
	p.Invoices = invoices
	p.Reviews = reviews
	return p
}

func TestProcessFileKnownVendorCreated(t *testing.T) {
	ws := uuid.New()
	customers := &fakeCustomers{records: []entity.Customer{{
		ID:          uuid.New(),
		WorkspaceID: ws,
		Name:        "VirtFusion Ltd",
		VATNumber:   "GB397097932",
		Email:       "billing@virtfusion.example",
	}}}
	invoices := &fakeInvoices{}
	reviews := &fakeReviews{}
	p := newTestProcessor(&fakeText{}, customers, invoices, reviews)

	out := p.ProcessFile(context.Background(), ws, "/up/factuur_VF13814_2024-03-10_100eur_21%.pdf")

	if out.Disposition != constants.DispositionCreated {
		t.Fatalf("disposition = %s (%s), want CREATED", out.Disposition, out.Reason)
	}
	if len(invoices.records) != 1 {
		t.Fatalf("persisted %d invoices, want 1", len(invoices.records))
	}
	inv := invoices.records[0]
	if inv.InvoiceNumber != "VF13814" {
		t.Errorf("invoice number = %q, want VF13814", inv.InvoiceNumber)
	}
	if inv.Date.Format("2006-01-02") != "2024-03-10" {
		t.Errorf("date = %s, want 2024-03-10", inv.Date.Format("2006-01-02"))
	}
	if inv.AmountInclVAT != 100.0 {
		t.Errorf("amount incl = %v, want 100", inv.AmountInclVAT)
	}
	if inv.CustomerID != customers.records[0].ID {
		t.Errorf("customer id = %v, want the matched VirtFusion record", inv.CustomerID)
	}
	// Matched, not created: no extra customer rows.
	if len(customers.records) != 1 {
		t.Errorf("customer records = %d, want 1", len(customers.records))
	}
}

func TestProcessFileSecondSubmissionIsDuplicate(t *testing.T) {
	ws := uuid.New()
	customers := &fakeCustomers{records: []entity.Customer{{
		ID: uuid.New(), WorkspaceID: ws, Name: "VirtFusion Ltd", VATNumber: "GB397097932",
	}}}
	invoices := &fakeInvoices{}
	p := newTestProcessor(&fakeText{}, customers, invoices, &fakeReviews{})

	path := "/up/factuur_VF13814_2024-03-10_100eur_21%.pdf"
	first := p.ProcessFile(context.Background(), ws, path)
	second := p.ProcessFile(context.Background(), ws, path)

	if first.Disposition != constants.DispositionCreated {
		t.Fatalf("first = %s, want CREATED", first.Disposition)
	}
	if second.Disposition != constants.DispositionDuplicate {
		t.Fatalf("second = %s, want DUPLICATE", second.Disposition)
	}
	if second.ExistingInvoiceID == nil || *second.ExistingInvoiceID != *first.InvoiceID {
		t.Errorf("duplicate links %v, want %v", second.ExistingInvoiceID, first.InvoiceID)
	}
	if len(invoices.records) != 1 {
		t.Errorf("persisted %d invoices, want 1", len(invoices.records))
	}
}

func TestProcessFileUnknownGoesToReview(t *testing.T) {
	ws := uuid.New()
	reviews := &fakeReviews{}
	p := newTestProcessor(&fakeText{}, &fakeCustomers{}, &fakeInvoices{}, reviews)

	out := p.ProcessFile(context.Background(), ws, "/up/scan0001.jpg")

	if out.Disposition != constants.DispositionManualReview {
		t.Fatalf("disposition = %s, want MANUAL_REVIEW", out.Disposition)
	}
	if out.Reason != "unknown document type" {
		t.Errorf("reason = %q", out.Reason)
	}
	if len(reviews.items) != 1 || reviews.items[0].Reason != "unknown document type" {
		t.Errorf("review queue = %+v", reviews.items)
	}
}

func TestProcessFileBankStatementAlwaysReview(t *testing.T) {
	ws := uuid.New()
	reviews := &fakeReviews{}
	p := newTestProcessor(&fakeText{}, &fakeCustomers{}, &fakeInvoices{}, reviews)

	out := p.ProcessFile(context.Background(), ws, "/up/bank_ing_afschrift_2024-01-15.pdf")

	if out.Disposition != constants.DispositionManualReview {
		t.Fatalf("disposition = %s, want MANUAL_REVIEW", out.Disposition)
	}
	if out.Reason != "bank statement requires manual matching to invoices" {
		t.Errorf("reason = %q", out.Reason)
	}
	if !strings.Contains(string(out.PartialData), "ING Bank") {
		t.Errorf("partial data = %s, want bank name resolved", out.PartialData)
	}
}

func TestProcessFileNewCounterpartyBelowThreshold(t *testing.T) {
	ws := uuid.New()
	customers := &fakeCustomers{}
	invoices := &fakeInvoices{}
	reviews := &fakeReviews{}
	p := newTestProcessor(&fakeText{}, customers, invoices, reviews)

	out := p.ProcessFile(context.Background(), ws, "/up/invoice_AcmeCorp_2024-05-01_250.00eur.pdf")

	if out.Disposition != constants.DispositionManualReview {
		t.Fatalf("disposition = %s, want MANUAL_REVIEW", out.Disposition)
	}
	if out.Reason != "needs manual review" {
		t.Errorf("reason = %q", out.Reason)
	}
	// The counterparty is still created; only the invoice commit is gated.
	if len(customers.records) != 1 {
		t.Fatalf("customer records = %d, want 1", len(customers.records))
	}
	c := customers.records[0]
	if c.Name != "Acmecorp" {
		t.Errorf("customer name = %q", c.Name)
	}
	if c.Email != "info@acmecorp.com" {
		t.Errorf("customer email = %q, want synthesized placeholder", c.Email)
	}
	if len(invoices.records) != 0 {
		t.Errorf("persisted %d invoices, want 0", len(invoices.records))
	}
	if !strings.Contains(string(out.PartialData), "250") {
		t.Errorf("partial data = %s, want extracted amount preserved", out.PartialData)
	}
}

func TestProcessFileTextSourceErrorIsError(t *testing.T) {
	ws := uuid.New()
	text := &fakeText{errs: map[string]error{"/up/broken.pdf": errors.New("unreadable")}}
	p := newTestProcessor(text, &fakeCustomers{}, &fakeInvoices{}, &fakeReviews{})

	out := p.ProcessFile(context.Background(), ws, "/up/broken.pdf")
	if out.Disposition != constants.DispositionError {
		t.Fatalf("disposition = %s, want ERROR", out.Disposition)
	}
	if !strings.Contains(out.Reason, "unreadable") {
		t.Errorf("reason = %q, want the collaborator error surfaced", out.Reason)
	}
}

func TestProcessFilePersistenceFailureDowngrades(t *testing.T) {
	ws := uuid.New()
	customers := &fakeCustomers{records: []entity.Customer{{
		ID: uuid.New(), WorkspaceID: ws, Name: "VirtFusion Ltd", VATNumber: "GB397097932",
	}}}
	invoices := &fakeInvoices{createErr: errors.New("constraint violation")}
	reviews := &fakeReviews{}
	p := newTestProcessor(&fakeText{}, customers, invoices, reviews)

	out := p.ProcessFile(context.Background(), ws, "/up/factuur_VF13814_2024-03-10_100eur_21%.pdf")

	if out.Disposition != constants.DispositionManualReview {
		t.Fatalf("disposition = %s, want MANUAL_REVIEW downgrade", out.Disposition)
	}
	if !strings.Contains(out.Reason, "constraint violation") {
		t.Errorf("reason = %q, want persistence error surfaced", out.Reason)
	}
	if len(reviews.items) != 1 {
		t.Errorf("review queue = %d items, want 1", len(reviews.items))
	}
}

func TestProcessBatchBucketsEveryFile(t *testing.T) {
	ws := uuid.New()
	customers := &fakeCustomers{records: []entity.Customer{{
		ID: uuid.New(), WorkspaceID: ws, Name: "VirtFusion Ltd", VATNumber: "GB397097932",
	}}}
	text := &fakeText{errs: map[string]error{"/up/broken.pdf": errors.New("unreadable")}}
	p := newTestProcessor(text, customers, &fakeInvoices{}, &fakeReviews{})

	files := []string{
		"/up/factuur_VF13814_2024-03-10_100eur_21%.pdf",
		"/up/factuur_VF13814_2024-03-10_100eur_21%.pdf", // duplicate
		"/up/scan0001.jpg",
		"/up/bank_ing_afschrift_2024-01-15.pdf",
		"/up/broken.pdf",
	}
	res := p.ProcessBatch(context.Background(), ws, files)

	if len(res.SavedFiles) != len(files) {
		t.Errorf("saved = %d, want %d", len(res.SavedFiles), len(files))
	}
	if len(res.Created) != 1 || len(res.Duplicates) != 1 || len(res.ManualReview) != 2 || len(res.Errors) != 1 {
		t.Errorf("buckets = created:%d dup:%d review:%d err:%d, want 1/1/2/1",
			len(res.Created), len(res.Duplicates), len(res.ManualReview), len(res.Errors))
	}
	total := len(res.Created) + len(res.Duplicates) + len(res.ManualReview) + len(res.Errors)
	if total != len(files) {
		t.Errorf("every file must land in exactly one bucket; got %d of %d", total, len(files))
	}
}
