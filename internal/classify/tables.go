package classify

// KeywordTable holds the indicator keyword sets used for heuristic
// classification. Tables are treated as immutable after construction;
// tests substitute alternate tables instead of mutating the default.
type KeywordTable struct {
	InvoiceKeywords []string
	BankKeywords    []string
}

// Total returns the combined keyword count used as the confidence
// denominator.
func (t KeywordTable) Total() int {
	return len(t.InvoiceKeywords) + len(t.BankKeywords)
}

// DefaultKeywordTable returns the built-in multi-lingual keyword sets
// (English, Dutch, French, German).
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		InvoiceKeywords: []string{
			"invoice", "factuur", "facture", "rechnung", "bill",
			"receipt", "bon", "kwitantie", "nota", "rekening",
			"vf", "hs", "inv-", "fact-",
		},
		BankKeywords: []string{
			"bank", "statement", "afschrift", "rekeninguitreksel",
			"transaction", "transactie", "afrekeningsstaat",
		},
	}
}
