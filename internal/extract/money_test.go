package extract

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitVAT(t *testing.T) {
	tests := []struct {
		name     string
		incl     string
		rate     string
		wantExcl string
		wantVAT  string
	}{
		{"standard rate", "100", "21", "82.64", "17.36"},
		{"reduced rate", "106", "6", "100", "6"},
		{"round euro total", "121", "21", "100", "21"},
		{"awkward rounding", "99.99", "21", "82.64", "17.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incl := decimal.RequireFromString(tt.incl)
			rate := decimal.RequireFromString(tt.rate)
			excl, vat := SplitVAT(incl, rate)
			if !excl.Equal(decimal.RequireFromString(tt.wantExcl)) {
				t.Errorf("excl = %s, want %s", excl, tt.wantExcl)
			}
			if !vat.Equal(decimal.RequireFromString(tt.wantVAT)) {
				t.Errorf("vat = %s, want %s", vat, tt.wantVAT)
			}
			// The split must always reassemble to the inclusive amount.
			if !excl.Add(vat).Equal(incl) {
				t.Errorf("excl+vat = %s, want %s", excl.Add(vat), incl)
			}
		})
	}
}

func TestSplitVATIdempotent(t *testing.T) {
	incl := decimal.RequireFromString("123.45")
	rate := decimal.RequireFromString("21")

	excl1, vat1 := SplitVAT(incl, rate)
	excl2, vat2 := SplitVAT(incl, rate)
	if !excl1.Equal(excl2) || !vat1.Equal(vat2) {
		t.Errorf("recomputation diverged: (%s,%s) vs (%s,%s)", excl1, vat1, excl2, vat2)
	}
}

func TestAddVAT(t *testing.T) {
	excl := decimal.RequireFromString("100")
	incl, vat := AddVAT(excl, decimal.RequireFromString("21"))
	if !incl.Equal(decimal.RequireFromString("121")) {
		t.Errorf("incl = %s, want 121", incl)
	}
	if !vat.Equal(decimal.RequireFromString("21")) {
		t.Errorf("vat = %s, want 21", vat)
	}
}
