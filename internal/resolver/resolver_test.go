package resolver

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexonbooks/docintake/internal/entity"
	"github.com/nexonbooks/docintake/internal/extract"
)

func customer(name, vat string) entity.Customer {
	return entity.Customer{ID: uuid.New(), Name: name, VATNumber: vat}
}

func TestResolveVATMatch(t *testing.T) {
	r := NewCounterpartyResolver(nil)
	existing := []entity.Customer{
		customer("Some Other Co", "BE0111111111"),
		customer("VirtFusion Ltd", "GB397097932"),
	}

	tests := []struct {
		name    string
		cand    extract.CounterpartyCandidate
		wantIdx int
	}{
		{
			name:    "exact vat",
			cand:    extract.CounterpartyCandidate{Name: "whatever", VATNumber: "GB397097932", MatchConfidence: 0.95},
			wantIdx: 1,
		},
		{
			name:    "vat with spaces and dots",
			cand:    extract.CounterpartyCandidate{VATNumber: "gb 397.097.932", MatchConfidence: 0.95},
			wantIdx: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := r.Resolve(tt.cand, existing)
			if m.ID == nil || *m.ID != existing[tt.wantIdx].ID {
				t.Fatalf("matched %v, want %v", m.ID, existing[tt.wantIdx].ID)
			}
			if m.Confidence != tt.cand.MatchConfidence {
				t.Errorf("confidence = %v, want candidate's %v unchanged", m.Confidence, tt.cand.MatchConfidence)
			}
		})
	}
}

func TestResolveNameSubstring(t *testing.T) {
	r := NewCounterpartyResolver(nil)
	existing := []entity.Customer{customer("Acme Corp BV", "")}

	// Candidate contains existing and vice versa both count.
	for _, name := range []string{"acme corp", "Acme Corp BV International"} {
		m := r.Resolve(extract.CounterpartyCandidate{Name: name, MatchConfidence: 0.6}, existing)
		if m.ID == nil {
			t.Errorf("Resolve(%q) found no match", name)
		}
	}

	m := r.Resolve(extract.CounterpartyCandidate{Name: "Globex", MatchConfidence: 0.6}, existing)
	if m.ID != nil {
		t.Errorf("Resolve(Globex) matched %v, want none", m.ID)
	}
	if m.Confidence != 0.6 {
		t.Errorf("no-match confidence = %v, want 0.6", m.Confidence)
	}
}

func TestResolveEmptyCandidate(t *testing.T) {
	r := NewCounterpartyResolver(nil)
	m := r.Resolve(extract.CounterpartyCandidate{}, []entity.Customer{customer("Acme", "")})
	if m.ID != nil {
		t.Errorf("empty candidate matched %v", m.ID)
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFindDuplicateExactNumber(t *testing.T) {
	d := NewDuplicateDetector(nil)
	existing := []entity.Invoice{{
		ID:            uuid.New(),
		InvoiceNumber: "VF13814",
		Date:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		AmountInclVAT: 100,
	}}

	cand := &extract.InvoiceCandidate{InvoiceNumber: "VF13814", Date: "2099-01-01", AmountInclVAT: dec("999")}
	if got := d.FindDuplicate(cand, nil, existing); got == nil || *got != existing[0].ID {
		t.Fatalf("FindDuplicate = %v, want %v regardless of date/amount", got, existing[0].ID)
	}
}

func TestFindDuplicateCompositeBoundary(t *testing.T) {
	d := NewDuplicateDetector(nil)
	custID := uuid.New()
	existing := []entity.Invoice{{
		ID:            uuid.New(),
		CustomerID:    custID,
		InvoiceNumber: "INV-1",
		Date:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		AmountInclVAT: 100.00,
	}}

	tests := []struct {
		name   string
		amount string
		want   bool
	}{
		{"within epsilon", "100.009", true},
		{"outside epsilon", "100.011", false},
		{"exact amount", "100.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := &extract.InvoiceCandidate{
				InvoiceNumber: "INV-2",
				Date:          "2024-03-10",
				AmountInclVAT: dec(tt.amount),
			}
			got := d.FindDuplicate(cand, &custID, existing)
			if (got != nil) != tt.want {
				t.Errorf("FindDuplicate(%s) = %v, want dup=%v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFindDuplicateCompositeNeedsAllFields(t *testing.T) {
	d := NewDuplicateDetector(nil)
	custID := uuid.New()
	existing := []entity.Invoice{{
		ID:            uuid.New(),
		CustomerID:    custID,
		InvoiceNumber: "INV-1",
		Date:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		AmountInclVAT: 100.00,
	}}

	// Missing amount: composite check must not run.
	cand := &extract.InvoiceCandidate{InvoiceNumber: "INV-2", Date: "2024-03-10"}
	if got := d.FindDuplicate(cand, &custID, existing); got != nil {
		t.Errorf("FindDuplicate without amount = %v, want nil", got)
	}

	// Missing counterparty: composite check must not run.
	cand = &extract.InvoiceCandidate{InvoiceNumber: "INV-2", Date: "2024-03-10", AmountInclVAT: dec("100.00")}
	if got := d.FindDuplicate(cand, nil, existing); got != nil {
		t.Errorf("FindDuplicate without counterparty = %v, want nil", got)
	}
}
