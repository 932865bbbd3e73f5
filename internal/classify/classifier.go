package classify

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/nexonbooks/docintake/constants"
)

var (
	reInvoiceSuffix = regexp.MustCompile(`(inv|fact|uur|bill)[-_]?\d+`)
	reBankSuffix    = regexp.MustCompile(`(bank|statement|afschrift)[-_]?\d+`)
)

// Result is a document type decision with its heuristic confidence.
type Result struct {
	Type       constants.DocumentType
	Confidence float64
}

// Classifier decides the document kind from filename tokens and extracted
// text using keyword scoring. It never fails; on any internal fault it
// degrades to unknown with low confidence.
type Classifier struct {
	table     KeywordTable
	scanLimit int
	logger    *slog.Logger
}

// NewClassifier builds a classifier over the given keyword table.
// scanLimit bounds how many characters of text are examined; <=0 means
// the default of 8000.
func NewClassifier(table KeywordTable, scanLimit int, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	if scanLimit <= 0 {
		scanLimit = 8000
	}
	return &Classifier{table: table, scanLimit: scanLimit, logger: logger}
}

// Classify scores fileName and text against the keyword table. Text may be
// empty, in which case classification is filename-only.
func (c *Classifier) Classify(fileName, text string) Result {
	haystack := strings.ToLower(fileName)
	if text != "" {
		t := text
		if len(t) > c.scanLimit {
			t = t[:c.scanLimit]
		}
		haystack += "\n" + strings.ToLower(t)
	}

	invoiceHits := countHits(haystack, c.table.InvoiceKeywords)
	bankHits := countHits(haystack, c.table.BankKeywords)
	total := c.table.Total()
	if total == 0 {
		return Result{Type: constants.DocTypeUnknown, Confidence: 0.3}
	}

	var res Result
	switch {
	case invoiceHits > bankHits:
		res = Result{
			Type:       constants.DocTypeInvoice,
			Confidence: clampConfidence(0.5 + float64(invoiceHits)/float64(total)*0.5),
		}
	case bankHits > invoiceHits:
		res = Result{
			Type:       constants.DocTypeBankStatement,
			Confidence: clampConfidence(0.5 + float64(bankHits)/float64(total)*0.5),
		}
	case reInvoiceSuffix.MatchString(haystack):
		res = Result{Type: constants.DocTypeInvoice, Confidence: 0.85}
	case reBankSuffix.MatchString(haystack):
		res = Result{Type: constants.DocTypeBankStatement, Confidence: 0.85}
	default:
		res = Result{Type: constants.DocTypeUnknown, Confidence: 0.3}
	}

	c.logger.Debug("classify.done",
		"file", fileName,
		"type", res.Type,
		"confidence", res.Confidence,
		"invoice_hits", invoiceHits,
		"bank_hits", bankHits)
	return res
}

func countHits(haystack string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			hits++
		}
	}
	return hits
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 0.95 {
		return 0.95
	}
	return v
}
