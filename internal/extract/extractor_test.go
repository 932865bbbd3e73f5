package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nexonbooks/docintake/constants"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestExtractor() *Extractor {
	return NewExtractor(nil, 0, fixedNow, nil)
}

func TestExtractInvoiceKnownVendor(t *testing.T) {
	e := newTestExtractor()

	doc := e.Extract(constants.DocTypeInvoice, "factuur_VF13814_2024-03-10_100eur_21%.pdf", "/up/f.pdf", "")
	cand, ok := doc.(*InvoiceCandidate)
	if !ok {
		t.Fatalf("got %T, want *InvoiceCandidate", doc)
	}

	if cand.InvoiceNumber != "VF13814" {
		t.Errorf("invoice number = %q, want VF13814", cand.InvoiceNumber)
	}
	if cand.Date != "2024-03-10" {
		t.Errorf("date = %q, want 2024-03-10", cand.Date)
	}
	if cand.AmountInclVAT == nil || !cand.AmountInclVAT.Equal(decimal.NewFromInt(100)) {
		t.Errorf("amount incl = %v, want 100", cand.AmountInclVAT)
	}
	if !cand.VATRate.Equal(decimal.NewFromInt(21)) {
		t.Errorf("vat rate = %s, want 21", cand.VATRate)
	}
	if cand.Counterparty.Name != "VirtFusion Ltd" {
		t.Errorf("counterparty = %q, want VirtFusion Ltd", cand.Counterparty.Name)
	}
	if cand.Counterparty.VATNumber != "GB397097932" {
		t.Errorf("vat number = %q", cand.Counterparty.VATNumber)
	}
	if cand.Counterparty.MatchConfidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", cand.Counterparty.MatchConfidence)
	}
	if cand.AmountExclVAT == nil || !cand.AmountExclVAT.Equal(decimal.RequireFromString("82.64")) {
		t.Errorf("amount excl = %v, want 82.64", cand.AmountExclVAT)
	}
	if cand.VATAmount == nil || !cand.VATAmount.Equal(decimal.RequireFromString("17.36")) {
		t.Errorf("vat amount = %v, want 17.36", cand.VATAmount)
	}
}

func TestExtractInvoiceUnknownVendor(t *testing.T) {
	e := newTestExtractor()

	doc := e.Extract(constants.DocTypeInvoice, "invoice_AcmeCorp_2024-05-01_250.00eur.pdf", "/up/a.pdf", "")
	cand := doc.(*InvoiceCandidate)

	if cand.Counterparty.Name != "Acmecorp" {
		t.Errorf("counterparty = %q, want Acmecorp", cand.Counterparty.Name)
	}
	if cand.Counterparty.MatchConfidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", cand.Counterparty.MatchConfidence)
	}
	if cand.Date != "2024-05-01" {
		t.Errorf("date = %q, want 2024-05-01", cand.Date)
	}
	if cand.AmountInclVAT == nil || !cand.AmountInclVAT.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("amount incl = %v, want 250.00", cand.AmountInclVAT)
	}
	if cand.InvoiceType != constants.InvoiceTypeExpense {
		t.Errorf("type = %q, want expense", cand.InvoiceType)
	}
}

func TestExtractInvoiceFallbackDefaults(t *testing.T) {
	e := newTestExtractor()

	doc := e.Extract(constants.DocTypeInvoice, "expense.pdf", "/up/x.pdf", "")
	cand := doc.(*InvoiceCandidate)

	// A document with nothing extractable still yields a complete candidate.
	if cand.Date != "2024-06-15" {
		t.Errorf("date = %q, want fixed today 2024-06-15", cand.Date)
	}
	if len(cand.InvoiceNumber) != 13 || cand.InvoiceNumber[:5] != "AUTO-" {
		t.Errorf("invoice number = %q, want AUTO-XXXXXXXX", cand.InvoiceNumber)
	}
	if !cand.VATRate.Equal(decimal.NewFromInt(21)) {
		t.Errorf("vat rate = %s, want default 21", cand.VATRate)
	}
	if cand.AmountInclVAT != nil {
		t.Errorf("amount incl = %v, want nil", cand.AmountInclVAT)
	}
	if cand.Counterparty.Name != "Auto-detected Customer" {
		t.Errorf("counterparty = %q", cand.Counterparty.Name)
	}
}

func TestExtractInvoiceFromText(t *testing.T) {
	e := newTestExtractor()

	text := `Hostio Solutions
Factuurnummer: HS-2024-017
Factuurdatum: 01-02-2024
Totaal incl. BTW: € 60,50
BTW 21%
info@hostio.example`

	doc := e.Extract(constants.DocTypeInvoice, "document.pdf", "/up/d.pdf", text)
	cand := doc.(*InvoiceCandidate)

	if cand.InvoiceNumber != "hs-2024-017" {
		t.Errorf("invoice number = %q, want hs-2024-017", cand.InvoiceNumber)
	}
	if cand.Date != "2024-02-01" {
		t.Errorf("date = %q, want 2024-02-01", cand.Date)
	}
	if cand.AmountInclVAT == nil || !cand.AmountInclVAT.Equal(decimal.RequireFromString("60.50")) {
		t.Errorf("amount incl = %v, want 60.50", cand.AmountInclVAT)
	}
	// "hostio" in the text triggers the vendor override.
	if cand.Counterparty.Name != "Hostio Solutions" {
		t.Errorf("counterparty = %q, want Hostio Solutions", cand.Counterparty.Name)
	}
	if cand.Counterparty.MatchConfidence != 0.90 {
		t.Errorf("confidence = %v, want 0.90", cand.Counterparty.MatchConfidence)
	}
}

func TestExtractInvoiceIncomeMarker(t *testing.T) {
	e := newTestExtractor()

	doc := e.Extract(constants.DocTypeInvoice, "factuur_income_ClientX_2024-01-01.pdf", "/up/i.pdf", "")
	cand := doc.(*InvoiceCandidate)
	if cand.InvoiceType != constants.InvoiceTypeIncome {
		t.Errorf("type = %q, want income", cand.InvoiceType)
	}
}

func TestExtractBankStatement(t *testing.T) {
	e := newTestExtractor()

	doc := e.Extract(constants.DocTypeBankStatement, "bank_ing_afschrift_2024-01-15.pdf", "/up/b.pdf", "")
	cand, ok := doc.(*BankStatementCandidate)
	if !ok {
		t.Fatalf("got %T, want *BankStatementCandidate", doc)
	}
	if cand.BankName != "ING Bank" {
		t.Errorf("bank = %q, want ING Bank", cand.BankName)
	}
	if cand.StatementDate != "2024-01-15" {
		t.Errorf("date = %q, want 2024-01-15", cand.StatementDate)
	}
}

func TestExtractBankStatementFromText(t *testing.T) {
	e := newTestExtractor()

	text := `KBC Bank
IBAN: BE71 0961 2345 6769
Periode: 01-01-2024 tot 31-01-2024
Beginsaldo: € 1.000,00
Eindsaldo: € 850,25
05-01-2024 Hosting subscription -49,99
12-01-2024 Client payment +500,00`

	doc := e.Extract(constants.DocTypeBankStatement, "afschrift.pdf", "/up/s.pdf", text)
	cand := doc.(*BankStatementCandidate)

	if cand.BankName != "KBC Bank" {
		t.Errorf("bank = %q, want KBC Bank", cand.BankName)
	}
	if cand.AccountNumber != "BE71096123456769" {
		t.Errorf("account = %q, want BE71096123456769", cand.AccountNumber)
	}
	if cand.OpeningBalance == nil || !cand.OpeningBalance.Equal(decimal.RequireFromString("1000.00")) {
		t.Errorf("opening = %v, want 1000.00", cand.OpeningBalance)
	}
	if cand.ClosingBalance == nil || !cand.ClosingBalance.Equal(decimal.RequireFromString("850.25")) {
		t.Errorf("closing = %v, want 850.25", cand.ClosingBalance)
	}
	if len(cand.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(cand.Transactions))
	}
	if cand.Transactions[0].Type != constants.TxDebit || !cand.Transactions[0].Amount.Equal(decimal.RequireFromString("49.99")) {
		t.Errorf("txn[0] = %+v, want debit 49.99", cand.Transactions[0])
	}
	if cand.Transactions[1].Type != constants.TxCredit || !cand.Transactions[1].Amount.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("txn[1] = %+v, want credit 500.00", cand.Transactions[1])
	}
}

func TestExtractUnknown(t *testing.T) {
	e := newTestExtractor()

	doc := e.Extract(constants.DocTypeUnknown, "scan0001.jpg", "/up/s.jpg", "")
	if _, ok := doc.(*UnknownDocument); !ok {
		t.Fatalf("got %T, want *UnknownDocument", doc)
	}
}
