package domain_test

import (
	"testing"

	"github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

func TestMinPrice(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"bare number", "130", 130},
		{"bare number two digits", "11", 11},
		{"bare number four digits", "1200", 1200},
		{"simple range", "130~140", 130},
		{"reversed range", "280~250", 250},
		{"labeled list", "본식 250~280;촬영 190~250", 190},
		{"labeled list with combo", "본식 250~280;촬영 190~250;촬영+본식 280~370", 190},
		{"label around single number", "기본 110만원", 110},
		{"empty", "", domain.PriceUnknown},
		{"whitespace only", "   ", domain.PriceUnknown},
		{"no digits", "문의 바랍니다", domain.PriceUnknown},
		{"single digit only", "5", domain.PriceUnknown},
		{"relaxed scan keeps plausible values", "옵션 3개 포함 55", 55},
		{"relaxed scan drops implausible values", "옵션 3개", domain.PriceUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.MinPrice(tc.raw); got != tc.want {
				t.Fatalf("MinPrice(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestMinPriceRangeProperty(t *testing.T) {
	// min(a, b) must come out regardless of order for in-range operands.
	pairs := [][2]string{
		{"10", "9999"},
		{"9999", "10"},
		{"190", "250"},
		{"450", "450"},
	}
	want := []int{10, 10, 190, 450}

	for i, p := range pairs {
		raw := p[0] + "~" + p[1]
		if got := domain.MinPrice(raw); got != want[i] {
			t.Errorf("MinPrice(%q) = %d, want %d", raw, got, want[i])
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"130", "1,300,000 원"},
		{"11", "110,000 원"},
		{"130~140", "1,300,000~1,400,000 원"},
		{"11~33", "110,000~330,000 원"},
		{"1.3", "13,000 원"},
		{"5.5", "55,000 원"},
		{"", ""},
		{"미정", ""},
	}

	for _, tc := range cases {
		if got := domain.FormatPrice(tc.raw); got != tc.want {
			t.Errorf("FormatPrice(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestFormatMinPrice(t *testing.T) {
	if got := domain.FormatMinPrice("130~140"); got != "1,300,000 원" {
		t.Fatalf("FormatMinPrice range = %q", got)
	}
	if got := domain.FormatMinPrice("130"); got != "1,300,000 원" {
		t.Fatalf("FormatMinPrice single = %q", got)
	}
}

func TestFormatPriceInText(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"본식 250~280", "본식 2,500,000~2,800,000 원"},
		{"추가비용 50", "추가비용 500,000 원"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := domain.FormatPriceInText(tc.raw); got != tc.want {
			t.Errorf("FormatPriceInText(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseOtherOptions(t *testing.T) {
	got := domain.ParseOtherOptions("헬퍼 동행; 야외 촬영 ;;앨범 추가")
	want := []string{"헬퍼 동행", "야외 촬영", "앨범 추가"}
	if len(got) != len(want) {
		t.Fatalf("ParseOtherOptions returned %d options, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option %d = %q, want %q", i, got[i], want[i])
		}
	}
	if domain.ParseOtherOptions("  ") != nil {
		t.Error("blank input should yield no options")
	}
}

func TestWithinBudget(t *testing.T) {
	cases := []struct {
		name   string
		vendor domain.Vendor
		budget int
		want   bool
	}{
		{"under budget", domain.Vendor{BasePrice: "130"}, 150, true},
		{"exactly at budget", domain.Vendor{BasePrice: "150"}, 150, true},
		{"over budget", domain.Vendor{BasePrice: "180"}, 150, false},
		{"range uses minimum", domain.Vendor{BasePrice: "140~200"}, 150, true},
		{"unknown price excluded", domain.Vendor{BasePrice: "문의"}, 150, false},
		{"empty price excluded", domain.Vendor{BasePrice: ""}, 150, false},
		{"explicit zero excluded", domain.Vendor{BasePrice: "0"}, 150, false},
		{"zero budget passes all", domain.Vendor{BasePrice: "문의"}, 0, true},
		{"negative budget passes all", domain.Vendor{BasePrice: "9999"}, -1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.vendor.WithinBudget(tc.budget); got != tc.want {
				t.Fatalf("WithinBudget(%d) with price %q = %v, want %v",
					tc.budget, tc.vendor.BasePrice, got, tc.want)
			}
		})
	}
}
