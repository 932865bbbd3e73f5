package extract

import (
	"regexp"
	"strings"

	"github.com/nexonbooks/docintake/constants"
)

// bankNames maps filename/text markers to canonical bank names. Order
// matters: first hit wins.
var bankNames = []struct {
	marker string
	name   string
}{
	{"ing", "ING Bank"},
	{"bnp", "BNP Paribas Fortis"},
	{"fortis", "BNP Paribas Fortis"},
	{"kbc", "KBC Bank"},
	{"belfius", "Belfius Bank"},
	{"argenta", "Argenta Bank"},
	{"axa", "AXA Bank"},
	{"deutsche", "Deutsche Bank"},
	{"rabobank", "Rabobank"},
}

var (
	ibanPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:account(?:\s+number)?|rekening(?:\s*nummer)?|no\.?|nr\.?)[:;. ]\s*([A-Z]{2}\d{2}[\s-]?[A-Z0-9]{4}[\s-]?[A-Z0-9]{4}[\s-]?[A-Z0-9]{4})`),
		regexp.MustCompile(`(?:IBAN|iban)[:;. ]\s*([A-Z]{2}\d{2}[\s-]?[A-Z0-9]{4}[\s-]?[A-Z0-9]{4}[\s-]?[A-Z0-9]{4})`),
		regexp.MustCompile(`([A-Z]{2}\d{2}[\s-]?[A-Z0-9]{4}[\s-]?[A-Z0-9]{4}[\s-]?[A-Z0-9]{4})`),
	}

	stmtDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:statement|afschrift)(?:\s+date|\s+datum)[:;. ]\s*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`),
		regexp.MustCompile(`(?:date|datum)[:;. ]\s*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`),
	}

	stmtPeriodPattern = regexp.MustCompile(`(?:period|periode)[:;. ]\s*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})\s*(?:to|tot)\s*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`)

	balancePatterns = []struct {
		re    *regexp.Regexp
		field string
	}{
		{regexp.MustCompile(`(?:opening|begin)(?:\s+balance|\s*saldo)[:;. ]\s*(?:[€$£]|\beur\b)?\s*([+-]?\d+(?:[.,]\d{1,3})+)`), "opening"},
		{regexp.MustCompile(`(?:closing|eind)(?:\s+balance|\s*saldo)[:;. ]\s*(?:[€$£]|\beur\b)?\s*([+-]?\d+(?:[.,]\d{1,3})+)`), "closing"},
		{regexp.MustCompile(`(?:balance|saldo)(?:\s+brought\s+forward|\s+opening)[:;. ]\s*(?:[€$£]|\beur\b)?\s*([+-]?\d+(?:[.,]\d{1,3})+)`), "opening"},
		{regexp.MustCompile(`(?:balance|saldo)(?:\s+carried\s+forward|\s+closing)[:;. ]\s*(?:[€$£]|\beur\b)?\s*([+-]?\d+(?:[.,]\d{1,3})+)`), "closing"},
	}

	txnDatePattern   = regexp.MustCompile(`\b(\d{1,2}[-/.]\d{1,2}(?:[-/.]\d{2,4})?)\b`)
	txnAmountPattern = regexp.MustCompile(`([+-]?\d+(?:[.,]\d{1,3})+)\b`)
	currencyPattern  = regexp.MustCompile(`(?:currency|valuta|munt)[:;. ]\s*([A-Z]{3})`)
)

// extractBankStatement resolves the bank via the fixed lookup table and
// pulls statement metadata plus a best-effort transaction list from the
// text. Statements carry no confidence; they always route to review.
func (e *Extractor) extractBankStatement(fileName, filePath, text string) *BankStatementCandidate {
	fnLower := strings.ToLower(fileName)
	txtLower := strings.ToLower(text)

	cand := &BankStatementCandidate{
		BankName:   "Unknown Bank",
		Currency:   "EUR",
		SourceFile: filePath,
	}

	for _, b := range bankNames {
		if strings.Contains(fnLower, b.marker) || strings.Contains(txtLower, strings.ToLower(b.name)) {
			cand.BankName = b.name
			break
		}
	}

	if raw := firstMatch(fnDatePatterns, fileName); raw != "" {
		if iso, ok := NormalizeDate(raw); ok {
			cand.StatementDate = iso
		}
	}

	if text != "" {
		e.enrichStatementFromText(cand, text, txtLower)
	}

	if cand.StatementDate == "" {
		cand.StatementDate = FallbackDate(e.now)
	}

	e.logger.Debug("extract.bankstatement",
		"file", fileName,
		"bank", cand.BankName,
		"date", cand.StatementDate,
		"transactions", len(cand.Transactions))
	return cand
}

func (e *Extractor) enrichStatementFromText(cand *BankStatementCandidate, text, txtLower string) {
	if raw := firstMatch(ibanPatterns, text); raw != "" {
		cand.AccountNumber = strings.NewReplacer(" ", "", "-", "").Replace(raw)
	}

	if cand.StatementDate == "" {
		if raw := firstMatch(stmtDatePatterns, txtLower); raw != "" {
			if iso, ok := NormalizeDate(raw); ok {
				cand.StatementDate = iso
			}
		}
	}

	if m := stmtPeriodPattern.FindStringSubmatch(txtLower); m != nil {
		cand.StatementPeriod = m[1] + " to " + m[2]
	}

	for _, p := range balancePatterns {
		m := p.re.FindStringSubmatch(txtLower)
		if m == nil {
			continue
		}
		amt, err := ParseAmount(m[1])
		if err != nil {
			continue
		}
		switch p.field {
		case "opening":
			if cand.OpeningBalance == nil {
				cand.OpeningBalance = &amt
			}
		case "closing":
			if cand.ClosingBalance == nil {
				cand.ClosingBalance = &amt
			}
		}
	}

	if m := currencyPattern.FindStringSubmatch(text); m != nil {
		cand.Currency = m[1]
	}

	cand.Transactions = parseTransactions(text)
}

// parseTransactions treats any line carrying both a date and an amount
// as a statement line. Negative amounts are debits; amounts are stored
// absolute with the sign folded into the type.
func parseTransactions(text string) []Transaction {
	var txns []Transaction
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		dateM := txnDatePattern.FindStringSubmatch(line)
		amountM := txnAmountPattern.FindStringSubmatch(line)
		if dateM == nil || amountM == nil {
			continue
		}

		date := dateM[1]
		if iso, ok := NormalizeDate(date); ok {
			date = iso
		}
		amt, err := ParseAmount(amountM[1])
		if err != nil {
			continue
		}

		ttype := constants.TxCredit
		if amt.IsNegative() {
			ttype = constants.TxDebit
			amt = amt.Abs()
		}

		desc := txnDatePattern.ReplaceAllString(line, "")
		desc = txnAmountPattern.ReplaceAllString(desc, "")
		desc = strings.Join(strings.Fields(desc), " ")

		txns = append(txns, Transaction{
			Date:        date,
			Description: desc,
			Amount:      amt,
			Type:        ttype,
		})
	}
	return txns
}
