package classify

import (
	"math"
	"strings"
	"testing"

	"github.com/nexonbooks/docintake/constants"
)

func TestClassifyFilenames(t *testing.T) {
	c := NewClassifier(DefaultKeywordTable(), 0, nil)

	tests := []struct {
		name     string
		fileName string
		text     string
		wantType constants.DocumentType
		wantConf float64
	}{
		{
			name:     "dutch invoice with vendor prefix",
			fileName: "factuur_VF13814_2024-03-10_100eur_21%.pdf",
			wantType: constants.DocTypeInvoice,
			wantConf: 0.5 + 2.0/21.0*0.5,
		},
		{
			name:     "english invoice",
			fileName: "invoice_AcmeCorp_2024-05-01_250.00eur.pdf",
			wantType: constants.DocTypeInvoice,
			wantConf: 0.5 + 1.0/21.0*0.5,
		},
		{
			name:     "bank statement",
			fileName: "bank_ing_afschrift_2024-01-15.pdf",
			wantType: constants.DocTypeBankStatement,
			wantConf: 0.5 + 2.0/21.0*0.5,
		},
		{
			name:     "opaque scan",
			fileName: "scan0001.jpg",
			wantType: constants.DocTypeUnknown,
			wantConf: 0.3,
		},
		{
			name:     "numeric suffix fallback invoice",
			fileName: "xyz_inv_0042.pdf",
			wantType: constants.DocTypeInvoice,
			wantConf: 0.85,
		},
		{
			name:     "numeric suffix fallback statement on tied hits",
			fileName: "factuur_bank_1.pdf",
			wantType: constants.DocTypeBankStatement,
			wantConf: 0.85,
		},
		{
			name:     "text content tips the decision",
			fileName: "document.pdf",
			text:     "Dit is uw bankafschrift met transacties",
			wantType: constants.DocTypeBankStatement,
			wantConf: 0.5 + 3.0/21.0*0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.fileName, tt.text)
			if got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
			if math.Abs(got.Confidence-tt.wantConf) > 1e-9 {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
		})
	}
}

func TestClassifyMonotonicity(t *testing.T) {
	c := NewClassifier(DefaultKeywordTable(), 0, nil)

	// Adding invoice keywords to the filename must never decrease
	// invoice confidence.
	prev := 0.0
	name := ""
	for _, kw := range []string{"invoice", "factuur", "facture", "rechnung", "bill"} {
		name += kw + "_"
		got := c.Classify(name+".pdf", "")
		if got.Type != constants.DocTypeInvoice {
			t.Fatalf("Classify(%q) type = %q, want invoice", name, got.Type)
		}
		if got.Confidence < prev {
			t.Fatalf("confidence decreased from %v to %v at %q", prev, got.Confidence, name)
		}
		prev = got.Confidence
	}
}

func TestClassifyConfidenceClamped(t *testing.T) {
	// A tiny table makes a single hit exceed the cap without clamping.
	c := NewClassifier(KeywordTable{InvoiceKeywords: []string{"invoice"}}, 0, nil)

	got := c.Classify("invoice.pdf", "")
	if got.Confidence != 0.95 {
		t.Errorf("confidence = %v, want clamp at 0.95", got.Confidence)
	}
}

func TestClassifyBoundsTextScan(t *testing.T) {
	c := NewClassifier(DefaultKeywordTable(), 100, nil)

	// Keywords past the scan limit must not be counted.
	text := strings.Repeat("x", 200) + " factuur invoice rekening"
	got := c.Classify("document.pdf", text)
	if got.Type != constants.DocTypeUnknown {
		t.Errorf("type = %q, want unknown beyond scan limit", got.Type)
	}
}

func TestClassifyEmptyTable(t *testing.T) {
	c := NewClassifier(KeywordTable{}, 0, nil)

	got := c.Classify("whatever.pdf", "")
	if got.Type != constants.DocTypeUnknown || got.Confidence != 0.3 {
		t.Errorf("got %+v, want unknown @0.3", got)
	}
}
