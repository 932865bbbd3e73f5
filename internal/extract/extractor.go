package extract

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/nexonbooks/docintake/constants"
)

// Extractor turns a classified document into a structured candidate via
// ordered pattern cascades, vendor overrides, and normalization rules.
// Extraction failures on individual fields never abort the whole pass;
// the result is always a best-effort candidate with defaults applied.
type Extractor struct {
	vendors   []VendorOverride
	scanLimit int
	now       func() time.Time
	logger    *slog.Logger
}

// NewExtractor builds an extractor. vendors may be nil for the default
// override table; now may be nil for time.Now; scanLimit <= 0 means the
// default of 8000 characters.
func NewExtractor(vendors []VendorOverride, scanLimit int, now func() time.Time, logger *slog.Logger) *Extractor {
	if vendors == nil {
		vendors = DefaultVendorOverrides()
	}
	if now == nil {
		now = time.Now
	}
	if scanLimit <= 0 {
		scanLimit = 8000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{vendors: vendors, scanLimit: scanLimit, now: now, logger: logger}
}

// Extract dispatches on the classified document type. Text may be empty,
// in which case only filename cascades run.
func (e *Extractor) Extract(docType constants.DocumentType, fileName, filePath, text string) Document {
	if len(text) > e.scanLimit {
		text = text[:e.scanLimit]
	}
	switch docType {
	case constants.DocTypeInvoice:
		return e.extractInvoice(fileName, filePath, text)
	case constants.DocTypeBankStatement:
		return e.extractBankStatement(fileName, filePath, text)
	default:
		return &UnknownDocument{SourceFile: filePath}
	}
}

func firstMatch(patterns []*regexp.Regexp, s string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(s); m != nil {
			if len(m) > 1 {
				return strings.TrimSpace(m[1])
			}
			return strings.TrimSpace(m[0])
		}
	}
	return ""
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
