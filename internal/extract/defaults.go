package extract

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deliberate business defaults. These are named policies, not incidental
// fallbacks: a missing date or VAT rate on an uploaded document is normal
// and must still produce a valid candidate.

// DefaultVATRate is the Belgian standard rate applied when no rate is
// found on the document.
func DefaultVATRate() decimal.Decimal {
	return decimal.NewFromFloat(21.0)
}

// FallbackDate returns today's date in ISO format. now is injectable so
// tests can pin it.
func FallbackDate(now func() time.Time) string {
	return now().Format("2006-01-02")
}

// SyntheticInvoiceNumber generates an AUTO-prefixed number so the field
// is never left empty downstream.
func SyntheticInvoiceNumber() string {
	return "AUTO-" + strings.ToUpper(uuid.New().String()[:8])
}

// PlaceholderEmail synthesizes a clearly fake address from a counterparty
// name. Persistence requires a non-null email.
func PlaceholderEmail(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		s = "unknown"
	}
	return "info@" + s + ".com"
}

// PlaceholderAddress marks an address that was not on the document.
func PlaceholderAddress() string {
	return "Automatisch gedetecteerd"
}

// PlaceholderCounterpartyName is used when nothing in the filename or
// text looks like a company name.
func PlaceholderCounterpartyName() string {
	return "Auto-detected Customer"
}
