package extract

import (
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nexonbooks/docintake/constants"
)

// extractInvoice runs the filename cascade first, then lets text-derived
// values fill any fields still missing. Vendor overrides supersede the
// counterparty fields at the end, and named defaults close the remaining
// gaps so the candidate is always complete.
func (e *Extractor) extractInvoice(fileName, filePath, text string) *InvoiceCandidate {
	fnLower := strings.ToLower(fileName)
	txtLower := strings.ToLower(text)

	cand := &InvoiceCandidate{
		VATRate:     DefaultVATRate(),
		InvoiceType: constants.InvoiceTypeExpense,
		SourceFile:  filePath,
	}

	cand.InvoiceNumber = firstMatch(fnInvoiceNumberPatterns, fileName)

	if raw := firstMatch(fnDatePatterns, fileName); raw != "" {
		if iso, ok := NormalizeDate(raw); ok {
			cand.Date = iso
		}
	}

	if raw := firstMatch(fnAmountPatterns, fnLower); raw != "" {
		if amt, err := ParseAmount(raw); err == nil {
			cand.AmountInclVAT = &amt
		}
	}

	rateFound := false
	if raw := firstMatch(fnVATRatePatterns, fnLower); raw != "" {
		if rate, err := decimal.NewFromString(raw); err == nil {
			cand.VATRate = rate
			rateFound = true
		}
	}

	switch {
	case containsAny(fnLower, fnIncomeMarkers):
		cand.InvoiceType = constants.InvoiceTypeIncome
	case containsAny(fnLower, fnExpenseMarkers):
		cand.InvoiceType = constants.InvoiceTypeExpense
	}

	if m := fnVATNumberPattern.FindString(fileName); m != "" {
		cand.Counterparty.VATNumber = NormalizeVATNumber(m)
	}

	if text != "" {
		e.enrichFromText(cand, text, txtLower, rateFound)
	}

	// Vendor overrides supersede regex results for the counterparty.
	if v := matchVendor(e.vendors, fnLower+"\n"+txtLower); v != nil {
		cand.Counterparty.Name = v.Name
		if v.VATNumber != "" {
			cand.Counterparty.VATNumber = v.VATNumber
		}
		cand.Counterparty.MatchConfidence = v.Confidence
		if cand.InvoiceNumber == "" && v.FallbackInvoiceNumber != "" {
			cand.InvoiceNumber = v.FallbackInvoiceNumber
		}
		if cand.AmountInclVAT == nil && v.FallbackAmountInclVAT != nil {
			cand.AmountInclVAT = v.FallbackAmountInclVAT
		}
	}

	if cand.Counterparty.Name == "" {
		if name := counterpartyNameFromFilename(fileName); name != "" {
			cand.Counterparty.Name = name
			cand.Counterparty.MatchConfidence = 0.6
		} else {
			cand.Counterparty.Name = PlaceholderCounterpartyName()
			cand.Counterparty.MatchConfidence = 0.3
		}
	}

	if cand.InvoiceNumber == "" {
		cand.InvoiceNumber = SyntheticInvoiceNumber()
	}
	if cand.Date == "" {
		cand.Date = FallbackDate(e.now)
	}

	// Derive the remaining VAT amounts before any second rounding pass.
	if cand.AmountInclVAT != nil && cand.VATRate.IsPositive() {
		excl, vat := SplitVAT(*cand.AmountInclVAT, cand.VATRate)
		cand.AmountExclVAT = &excl
		cand.VATAmount = &vat
	} else if cand.AmountInclVAT == nil && cand.AmountExclVAT != nil && cand.VATRate.IsPositive() {
		incl, vat := AddVAT(*cand.AmountExclVAT, cand.VATRate)
		cand.AmountInclVAT = &incl
		cand.VATAmount = &vat
	}

	cand.ExtractionConfidence = cand.Counterparty.MatchConfidence

	e.logger.Debug("extract.invoice",
		"file", fileName,
		"invoice_number", cand.InvoiceNumber,
		"date", cand.Date,
		"counterparty", cand.Counterparty.Name,
		"confidence", cand.ExtractionConfidence)
	return cand
}

// enrichFromText fills fields the filename pass left empty. The header
// area (first lines) is searched before the full text for the invoice
// number and company names, matching how real invoices lay out.
func (e *Extractor) enrichFromText(cand *InvoiceCandidate, text, txtLower string, rateFound bool) {
	lines := strings.Split(text, "\n")
	headerEnd := len(lines)
	if headerEnd > 10 {
		headerEnd = 10
	}
	headerLower := strings.ToLower(strings.Join(lines[:headerEnd], "\n"))

	if cand.InvoiceNumber == "" {
		cand.InvoiceNumber = firstMatch(txtInvoiceNumberPatterns, headerLower)
		if cand.InvoiceNumber == "" {
			cand.InvoiceNumber = firstMatch(txtInvoiceNumberPatterns, txtLower)
		}
	}

	if cand.Date == "" {
		if raw := firstMatch(txtDatePatterns, txtLower); raw != "" {
			if iso, ok := NormalizeDate(raw); ok {
				cand.Date = iso
			}
		}
	}

	for _, p := range txtAmountPatterns {
		m := p.re.FindStringSubmatch(txtLower)
		if m == nil {
			continue
		}
		amt, err := ParseAmount(m[1])
		if err != nil {
			continue
		}
		switch p.field {
		case "excl":
			if cand.AmountExclVAT == nil {
				cand.AmountExclVAT = &amt
			}
		case "incl":
			if cand.AmountInclVAT == nil {
				cand.AmountInclVAT = &amt
			}
		case "vat":
			if cand.VATAmount == nil {
				cand.VATAmount = &amt
			}
		}
	}

	if !rateFound {
		if m := txtVATRatePattern.FindStringSubmatch(txtLower); m != nil {
			if rate, err := ParseAmount(m[1]); err == nil && plausibleVATRate(rate) {
				cand.VATRate = rate
			}
		}
	}

	seller, buyer := extractParties(lines, headerLower)

	if cand.Counterparty.VATNumber == "" {
		if raw := firstMatch(txtVATNumberPatterns, txtLower); raw != "" {
			cand.Counterparty.VATNumber = NormalizeVATNumber(raw)
		}
	}
	if email := txtEmailPattern.FindString(text); email != "" {
		seller.Email = email
	}

	if containsAny(txtLower, txtIncomeMarkers) {
		cand.InvoiceType = constants.InvoiceTypeIncome
	}

	// Expense invoices name the supplier; income invoices name the buyer.
	party := seller
	if cand.InvoiceType == constants.InvoiceTypeIncome && buyer.Name != "" {
		party = buyer
	}
	if cand.Counterparty.Name == "" && party.Name != "" {
		cand.Counterparty.Name = party.Name
		cand.Counterparty.MatchConfidence = 0.6
	}
	if cand.Counterparty.Address == "" {
		cand.Counterparty.Address = party.Address
	}
	if cand.Counterparty.Email == "" {
		cand.Counterparty.Email = party.Email
	}
}

// extractParties pulls seller and buyer names from labeled lines, with a
// header-line heuristic as fallback for the seller.
func extractParties(lines []string, headerLower string) (seller, buyer CounterpartyCandidate) {
	if m := txtSellerPattern.FindStringSubmatch(headerLower); m != nil {
		seller.Name = titleCase(m[1])
	}
	if m := txtBuyerPattern.FindStringSubmatch(headerLower); m != nil {
		buyer.Name = titleCase(m[1])
	}

	for i, line := range lines {
		lineLower := strings.ToLower(strings.TrimSpace(line))

		if seller.Name == "" && containsAny(lineLower, []string{"from:", "van:", "seller:", "verkoper:"}) {
			if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				seller.Name = strings.TrimSpace(lines[i+1])
				seller.Address = addressAfter(lines, i+2)
			}
		}
		if buyer.Name == "" && containsAny(lineLower, []string{"to:", "aan:", "buyer:", "koper:", "bill to:"}) {
			if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				buyer.Name = strings.TrimSpace(lines[i+1])
				buyer.Address = addressAfter(lines, i+2)
			}
		}

		// A short line near the top without header words is often the
		// seller's letterhead.
		if i < 5 && seller.Name == "" {
			trimmed := strings.TrimSpace(line)
			if len(trimmed) > 3 && len(trimmed) < 40 && !containsAny(lineLower, txtHeaderLineSkip) {
				seller.Name = trimmed
			}
		}
	}
	return seller, buyer
}

// addressAfter joins up to three following lines until a contact-detail
// line is hit.
func addressAfter(lines []string, start int) string {
	var parts []string
	for j := start; j < len(lines) && j < start+3; j++ {
		l := strings.TrimSpace(lines[j])
		if l == "" || containsAny(strings.ToLower(l), []string{"vat", "btw", "email", "tel"}) {
			break
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, " ")
}

// counterpartyNameFromFilename derives a company name from filename
// tokens, skipping generic terms and anything with digits (dates,
// amounts, invoice numbers).
func counterpartyNameFromFilename(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	var parts []string
	for _, p := range fnNameSplit.Split(base, -1) {
		if len(p) <= 2 || fnGenericTerms[strings.ToLower(p)] || reContainsDigit.MatchString(p) {
			continue
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return ""
	}
	return titleCase(strings.Join(parts, " "))
}
