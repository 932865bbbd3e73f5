package extract

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-10", "2024-03-10", true},
		{"10-03-2024", "2024-03-10", true},
		{"10/03/2024", "2024-03-10", true},
		{"10.03.2024", "2024-03-10", true},
		{"5-3-2024", "2024-03-05", true},
		{"10-03-24", "2024-03-10", true},
		{"not a date", "", false},
		{"10-03", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeDate(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("NormalizeDate(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123.45", "123.45"},
		{"123,45", "123.45"},
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"100", "100"},
		{"-42,50", "-42.5"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if err != nil {
				t.Fatalf("ParseAmount(%q) error: %v", tt.in, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseAmount("abc"); err == nil {
		t.Error("ParseAmount(abc) expected error")
	}
}

func TestNormalizeVATNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BE 0123.456.789", "BE0123456789"},
		{"be0123456789", "BE0123456789"},
		{"GB 397 097 932", "GB397097932"},
	}
	for _, tt := range tests {
		if got := NormalizeVATNumber(tt.in); got != tt.want {
			t.Errorf("NormalizeVATNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
