package extract

import "regexp"

// Pattern cascades are ordered: the first match wins, later entries are
// fallbacks for other locales and vendor quirks.

// Filename cascades.
var (
	fnInvoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:invoice|factuur|factuurnr|invoice\s*#|inv)[:\s-]*([A-Za-z0-9][-/A-Za-z0-9]{2,20})`),
		regexp.MustCompile(`(?i)([A-Za-z]{2,6}[-/]?[0-9]{2,8})`),
		regexp.MustCompile(`(?i)(?:VF|VFI)[-\s]?([0-9]{5,7})`),
		regexp.MustCompile(`#([0-9]{4,8})`),
		regexp.MustCompile(`(?i)bc[0-9]{2}[-\s]([0-9]{3})`),
	}

	fnDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
		regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`),
		regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})`),
	}

	fnAmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+(?:[.,]\d+)?)(?:eur|euro|€)`),
		regexp.MustCompile(`(?:eur|euro|€)\s*(\d+(?:[.,]\d+)?)`),
		regexp.MustCompile(`(\d+(?:[.,]\d{1,3})+)(?:gbp|pound|£)`),
		regexp.MustCompile(`(?:amount|total|bedrag|totaal)[\s:]*(\d+(?:[.,]\d{1,3})+)`),
	}

	fnVATRatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)(?:%|pct|percent)`),
		regexp.MustCompile(`btw\s*(\d+)`),
		regexp.MustCompile(`vat\s*(\d+)`),
	}

	fnVATNumberPattern = regexp.MustCompile(`(?i)(BE\d{10}|BE \d{4}\.\d{3}\.\d{3})`)
)

// Text cascades. Inputs are lowercased before matching.
var (
	txtInvoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:invoice|factuur)\s*(?:[-#:;]|number|nr\.?|nummer|no\.?)?\s*[:;. ]*#?\s*([a-z0-9][-_/.a-z0-9]+)`),
		regexp.MustCompile(`(?:facture|rekening|bill)\s*(?:[-#:;]|number|nr\.?|nummer|no\.?)?\s*[:;. ]*([a-z0-9][-_/.a-z0-9]+)`),
		regexp.MustCompile(`(?:factuurnr\.?|factuurnummer|nummer|klantnummer)\s*[:;. ]*([a-z0-9][-_/.a-z0-9]+)`),
		regexp.MustCompile(`\b(?:nr|no)\.?\s*[:;. ]*([a-z0-9][-_/.a-z0-9]+)`),
		regexp.MustCompile(`facture\s*n[o°]?\s*[:;. ]*([a-z0-9][-_/.a-z0-9]+)`),
		regexp.MustCompile(`rechnung\s*(?:nr|nummer)?\s*[:;. ]*([a-z0-9][-_/.a-z0-9]+)`),
		regexp.MustCompile(`(?:vf|hs)[-\s]*\d+`),
	}

	txtDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:invoice|facture|fact\.|factuur|factuurdatum)\s*(?:date|datum)\s*[:;. ]*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`),
		regexp.MustCompile(`(?:date|datum)(?:\s+of\s+invoice|\s+van\s+factuur)?\s*[:;. ]*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`),
		regexp.MustCompile(`(?:issued|uitgegeven)(?:\s+date|\s+op)?\s*[:;. ]*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`),
		regexp.MustCompile(`\b(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})\b`),
	}

	// Labeled amount patterns, tried in order; the field tells the
	// extractor which slot the match fills.
	txtAmountPatterns = []struct {
		re    *regexp.Regexp
		field string
	}{
		{regexp.MustCompile(`(?:total|totaal|subtotal|subtotaal|net|netto|amount|bedrag)\s*(?:excl\.?|excluding|zonder|ex)[.\s]*(?:vat|btw)[.\s:]*(?:[€$£]|\beur\b)?\s*(\d+(?:[.,]\d{1,3})+)`), "excl"},
		{regexp.MustCompile(`(?:subtotal|subtotaal|sub-totaal)\s*[.\s:]*(?:[€$£]|\beur\b)?\s*(\d+(?:[.,]\d{1,3})+)`), "excl"},
		{regexp.MustCompile(`(?:excl\.?|excluding|zonder|ex)[.\s]*(?:vat|btw)[.\s:]*(?:[€$£]|\beur\b)?\s*(\d+(?:[.,]\d{1,3})+)`), "excl"},
		{regexp.MustCompile(`(?:total|totaal|eindtotaal|te\s+betalen|to\s+pay|amount\s+due|grand\s+total|amount|bedrag)\s*(?:incl\.?|including|inclusief|met)[.\s]*(?:vat|btw)[.\s:]*(?:[€$£]|\beur\b)?\s*(\d+(?:[.,]\d{1,3})+)`), "incl"},
		{regexp.MustCompile(`(?:incl\.?|including|inclusief|met)[.\s]*(?:vat|btw)[.\s:]*(?:[€$£]|\beur\b)?\s*(\d+(?:[.,]\d{1,3})+)`), "incl"},
		{regexp.MustCompile(`(?:to\s+pay|te\s+betalen|balance\s+due|amount\s+due|grand\s+total|eindtotaal)\s*[.\s:]*(?:[€$£]|\beur\b)?\s*(\d+(?:[.,]\d{1,3})+)`), "incl"},
		{regexp.MustCompile(`(?:total|totaal|total\s+amount|totaalbedrag)[.\s:]*(?:[€$£]|\beur\b)?\s*(\d+(?:[.,]\d{1,3})+)`), "incl"},
		{regexp.MustCompile(`(?:vat|btw)(?:\s+amount|\s+bedrag)?[.\s:]*(?:[€$£]|\beur\b)?\s*(\d+(?:[.,]\d{1,3})+)`), "vat"},
	}

	txtVATRatePattern = regexp.MustCompile(`(?:vat|btw)(?:\s+rate|\s+tarief|\s+percentage)?[.\s:%]*(\d+(?:[.,]\d+)?)\s*%`)

	txtVATNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:vat|btw|tva|vatin|tax\s+id)(?:\s*id|\s*number|\s*nr|\s*nummer)?[.\s:]*((?:[a-z]{2}\s*)?[0-9]{8,12})`),
		regexp.MustCompile(`(?:ondernemingsnummer|ondernemingnummer)[.\s:]*([0-9]{4}\.[0-9]{3}\.[0-9]{3})`),
		regexp.MustCompile(`btw[.\s:]*([a-z]{2}[0-9]{4}\.?[0-9]{3}\.?[0-9]{3})`),
		regexp.MustCompile(`\b([a-z]{2}[0-9]{9,12})\b`),
		regexp.MustCompile(`\b(be\s*0[0-9]{9})\b`),
	}

	txtCompanySuffix  = `(?:b\.?v\.?|n\.?v\.?|s\.?a\.?|ltd\.?|inc\.?|gmbh)?`
	txtSellerPattern  = regexp.MustCompile(`(?:from|van|seller|verkoper|company|bedrijf)[.\s:]+([a-z0-9][a-z0-9 ]+` + txtCompanySuffix + `)`)
	txtBuyerPattern   = regexp.MustCompile(`(?:bill\s+to|aan|buyer|koper|client|klant)[.\s:]+([a-z0-9][a-z0-9 ]+` + txtCompanySuffix + `)`)
	txtEmailPattern   = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	txtIncomeMarkers  = []string{"income", "omzet", "your customer number", "uw klantnummer"}
	fnIncomeMarkers   = []string{"income", "inkomst"}
	fnExpenseMarkers  = []string{"expense", "uitgave"}
	fnNameSplit       = regexp.MustCompile(`[-_\s]+`)
	fnGenericTerms    = map[string]bool{"invoice": true, "factuur": true, "expense": true, "income": true, "pdf": true, "doc": true, "file": true}
	reContainsDigit   = regexp.MustCompile(`\d`)
	txtHeaderLineSkip = []string{"invoice", "factuur", "date", "datum", "number", "nummer", "page", "pagina"}
)
