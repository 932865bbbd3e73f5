package ai

import (
	"github.com/shopspring/decimal"

	"github.com/nexonbooks/docintake/constants"
	"github.com/nexonbooks/docintake/internal/entity"
	"github.com/nexonbooks/docintake/internal/extract"
)

// MergeInvoice applies AI-reported fields over a heuristic candidate.
// Only non-empty AI values supersede; heuristic results fill every gap,
// so a partial model answer never degrades the candidate.
func MergeInvoice(cand *extract.InvoiceCandidate, f DocumentFields) {
	if f.InvoiceNumber != "" {
		cand.InvoiceNumber = f.InvoiceNumber
	}
	if f.Date != "" {
		if iso, ok := extract.NormalizeDate(f.Date); ok {
			cand.Date = iso
		}
	}
	if d := parseDec(f.AmountInclVAT); d != nil {
		cand.AmountInclVAT = d
	}
	if d := parseDec(f.AmountExclVAT); d != nil {
		cand.AmountExclVAT = d
	}
	if d := parseDec(f.VATAmount); d != nil {
		cand.VATAmount = d
	}
	if f.VATRate > 0 {
		cand.VATRate = decimal.NewFromFloat(f.VATRate)
	}
	if f.InvoiceType == string(constants.InvoiceTypeIncome) || f.InvoiceType == string(constants.InvoiceTypeExpense) {
		cand.InvoiceType = constants.InvoiceType(f.InvoiceType)
	}

	// Expense invoices take the seller as counterparty, income the buyer.
	party := f.Seller
	if cand.InvoiceType == constants.InvoiceTypeIncome {
		party = f.Buyer
	}
	if party.Name != "" {
		cand.Counterparty.Name = party.Name
	}
	if party.Address != "" {
		cand.Counterparty.Address = party.Address
	}
	if party.VATNumber != "" {
		cand.Counterparty.VATNumber = extract.NormalizeVATNumber(party.VATNumber)
	}
	if party.Email != "" {
		cand.Counterparty.Email = party.Email
	}

	if len(f.LineItems) > 0 {
		items := make([]entity.LineItem, 0, len(f.LineItems))
		for _, li := range f.LineItems {
			item := entity.LineItem{
				Description: li.Description,
				Quantity:    li.Quantity,
				VATRate:     li.VATRate,
			}
			if d := parseDec(li.UnitPrice); d != nil {
				item.UnitPrice, _ = d.Float64()
			}
			items = append(items, item)
		}
		cand.LineItems = items
	}

	if f.Confidence > 0 {
		cand.Counterparty.MatchConfidence = f.Confidence
		cand.ExtractionConfidence = f.Confidence
	}

	// Re-derive VAT math when the model supplied new amounts.
	if cand.AmountInclVAT != nil && cand.VATRate.IsPositive() {
		excl, vat := extract.SplitVAT(*cand.AmountInclVAT, cand.VATRate)
		if cand.AmountExclVAT == nil {
			cand.AmountExclVAT = &excl
		}
		if cand.VATAmount == nil {
			cand.VATAmount = &vat
		}
	}
}

func parseDec(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
