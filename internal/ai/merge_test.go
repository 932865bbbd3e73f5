package ai

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nexonbooks/docintake/constants"
	"github.com/nexonbooks/docintake/internal/extract"
)

func TestMergeInvoiceSupersedesOnlyReportedFields(t *testing.T) {
	amt := decimal.RequireFromString("100")
	cand := &extract.InvoiceCandidate{
		InvoiceNumber: "AUTO-DEADBEEF",
		Date:          "2024-06-15",
		AmountInclVAT: &amt,
		VATRate:       decimal.NewFromInt(21),
		InvoiceType:   constants.InvoiceTypeExpense,
		Counterparty:  extract.CounterpartyCandidate{Name: "Acmecorp", MatchConfidence: 0.6},
	}

	MergeInvoice(cand, DocumentFields{
		DocumentType:  "invoice",
		InvoiceNumber: "INV-2024-001",
		Seller:        PartyFields{Name: "Acme Corporation BV", VATNumber: "be 0123.456.789"},
		Confidence:    0.92,
	})

	if cand.InvoiceNumber != "INV-2024-001" {
		t.Errorf("invoice number = %q", cand.InvoiceNumber)
	}
	// Fields the model did not report stay heuristic.
	if cand.Date != "2024-06-15" {
		t.Errorf("date = %q, want heuristic value kept", cand.Date)
	}
	if cand.AmountInclVAT == nil || !cand.AmountInclVAT.Equal(amt) {
		t.Errorf("amount = %v, want heuristic 100 kept", cand.AmountInclVAT)
	}
	if cand.Counterparty.Name != "Acme Corporation BV" {
		t.Errorf("counterparty = %q", cand.Counterparty.Name)
	}
	if cand.Counterparty.VATNumber != "BE0123456789" {
		t.Errorf("vat number = %q, want normalized BE0123456789", cand.Counterparty.VATNumber)
	}
	if cand.Counterparty.MatchConfidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", cand.Counterparty.MatchConfidence)
	}
}

func TestMergeInvoiceIncomeTakesBuyer(t *testing.T) {
	cand := &extract.InvoiceCandidate{VATRate: decimal.NewFromInt(21), InvoiceType: constants.InvoiceTypeExpense}

	MergeInvoice(cand, DocumentFields{
		DocumentType: "invoice",
		InvoiceType:  "income",
		Seller:       PartyFields{Name: "Our Own Company"},
		Buyer:        PartyFields{Name: "Client NV"},
	})

	if cand.InvoiceType != constants.InvoiceTypeIncome {
		t.Fatalf("type = %q, want income", cand.InvoiceType)
	}
	if cand.Counterparty.Name != "Client NV" {
		t.Errorf("counterparty = %q, want the buyer", cand.Counterparty.Name)
	}
}

func TestMergeInvoiceDerivesVATMath(t *testing.T) {
	cand := &extract.InvoiceCandidate{VATRate: decimal.NewFromInt(21), InvoiceType: constants.InvoiceTypeExpense}

	MergeInvoice(cand, DocumentFields{DocumentType: "invoice", AmountInclVAT: "121.00"})

	if cand.AmountExclVAT == nil || !cand.AmountExclVAT.Equal(decimal.NewFromInt(100)) {
		t.Errorf("excl = %v, want 100", cand.AmountExclVAT)
	}
	if cand.VATAmount == nil || !cand.VATAmount.Equal(decimal.NewFromInt(21)) {
		t.Errorf("vat = %v, want 21", cand.VATAmount)
	}
}

func TestValidateDocumentSchema(t *testing.T) {
	schema := BuildDocumentJSONSchema()

	valid := []byte(`{"document_type":"invoice","invoice_number":"INV-1","date":"2024-03-10","amount_incl_vat":"100.00","vat_rate":21}`)
	if err := ValidateJSONAgainstSchema(schema, valid); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	tests := []struct {
		name    string
		payload string
	}{
		{"missing document_type", `{"invoice_number":"INV-1"}`},
		{"bad date format", `{"document_type":"invoice","date":"10-03-2024"}`},
		{"bad amount format", `{"document_type":"invoice","amount_incl_vat":"1,00"}`},
		{"unknown field", `{"document_type":"invoice","surprise":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tt.payload)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
