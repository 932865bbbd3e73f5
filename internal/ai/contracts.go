// Package ai is the optional, pluggable extraction path. When an API
// credential is configured its results supersede the heuristic
// extractor's output field-by-field; missing credentials silently fall
// back to heuristics only.
package ai

import "context"

// PartyFields is the AI-reported counterparty. Empty strings mean the
// model did not find the field.
type PartyFields struct {
	Name      string `json:"name,omitempty"`
	Address   string `json:"address,omitempty"`
	VATNumber string `json:"vat_number,omitempty"`
	Email     string `json:"email,omitempty"`
}

// LineItemFields is one AI-reported invoice line.
type LineItemFields struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity,omitempty"`
	UnitPrice   string  `json:"unit_price,omitempty"` // decimal
	VATRate     float64 `json:"vat_rate,omitempty"`
}

// DocumentFields is the normalized shape we want from the model.
// Amounts are decimal strings to avoid binary float drift.
type DocumentFields struct {
	DocumentType  string           `json:"document_type"` // invoice | bank_statement | unknown
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	Date          string           `json:"date,omitempty"` // YYYY-MM-DD
	AmountInclVAT string           `json:"amount_incl_vat,omitempty"`
	AmountExclVAT string           `json:"amount_excl_vat,omitempty"`
	VATAmount     string           `json:"vat_amount,omitempty"`
	VATRate       float64          `json:"vat_rate,omitempty"`
	InvoiceType   string           `json:"invoice_type,omitempty"` // income | expense
	Seller        PartyFields      `json:"seller,omitempty"`
	Buyer         PartyFields      `json:"buyer,omitempty"`
	LineItems     []LineItemFields `json:"line_items,omitempty"`
	Confidence    float64          `json:"confidence,omitempty"` // 0..1
}

// FieldSource is the interface the pipeline depends on.
type FieldSource interface {
	ExtractFields(ctx context.Context, text, fileNameHint string) (DocumentFields, []byte /*rawJSON*/, error)
}
