package common

import (
	"testing"

	matching "github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

func TestCanonicalCategory(t *testing.T) {
	cases := []struct {
		input string
		want  matching.Category
		ok    bool
	}{
		{"", "", true},
		{"  ", "", true},
		{"studio", matching.CategoryStudio, true},
		{"Studios", matching.CategoryStudio, true},
		{"DRESS", matching.CategoryDress, true},
		{"dresses", matching.CategoryDress, true},
		{"make-up", matching.CategoryMakeup, true},
		{"스튜디오", matching.CategoryStudio, true},
		{"드레스", matching.CategoryDress, true},
		{"메이크업", matching.CategoryMakeup, true},
		{"banquet", "", false},
		{"웨딩홀", "", false},
	}

	for _, tc := range cases {
		got, ok := CanonicalCategory(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalCategory(%q) = (%q, %v), want (%q, %v)",
				tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
