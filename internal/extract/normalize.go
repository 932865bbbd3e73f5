package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var reDateSep = regexp.MustCompile(`[-/.]`)

// NormalizeDate converts a matched date string to ISO YYYY-MM-DD.
// Year-first input passes through unchanged; otherwise the input is read
// as day-month-year with zero padding and two-digit years mapped to 20xx.
// Returns false when the input does not split into three parts.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(s) {
		return s, true
	}
	parts := reDateSep.Split(s, -1)
	if len(parts) != 3 {
		return "", false
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(year) == 2 {
		year = "20" + year
	}
	if len(year) != 4 {
		return "", false
	}
	return year + "-" + pad2(month) + "-" + pad2(day), true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ParseAmount converts a matched amount string to a decimal, accepting
// both continental ("1.234,56") and anglo ("1,234.56") separator
// conventions. When only one separator kind is present it is taken as
// the decimal marker.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			// 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// NormalizeVATNumber strips spaces and punctuation and uppercases, so
// "BE 0123.456.789" and "be0123456789" compare equal.
func NormalizeVATNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// plausibleVATRate reports whether a text-derived rate is one of the
// Belgian VAT rates. Filename-derived rates are trusted as-is; OCR text
// produces too many stray percentages to accept arbitrary values.
func plausibleVATRate(rate decimal.Decimal) bool {
	for _, v := range []int64{0, 6, 9, 12, 21} {
		if rate.Equal(decimal.NewFromInt(v)) {
			return true
		}
	}
	return false
}

// titleCase uppercases the first letter of each space-separated word,
// lowercasing the rest.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
