package application_test

import (
	"testing"

	"github.com/wedifit/wedifit-services/api/internal/matching/application"
	"github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

func sampleVendors() []domain.Vendor {
	return []domain.Vendor{
		vendor(domain.CategoryStudio, "s1", "어반 프레임", "198"),
		vendor(domain.CategoryStudio, "s2", "루미에르", "250"),
		vendor(domain.CategoryStudio, "s3", "모먼트", "본식 250~280;촬영 190~250"),
		vendor(domain.CategoryDress, "d1", "그레이스 켈리", "380"),
		vendor(domain.CategoryDress, "d2", "실크 앤 레이스", "150"),
		vendor(domain.CategoryDress, "d3", "미정 드레스", "문의"),
		vendor(domain.CategoryMakeup, "m1", "퓨어 뷰티", "88"),
	}
}

func TestMatchBudgetFilter(t *testing.T) {
	budget := domain.BudgetInfo{Studio: 200, Dress: 200, Makeup: 100}
	got := application.Match(sampleVendors(), application.MatchQuery{Budget: &budget})

	wantIDs := map[string]bool{"s1": true, "s3": true, "d2": true, "m1": true}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d vendors, want %d", len(got), len(wantIDs))
	}
	for _, v := range got {
		if !wantIDs[v.ID] {
			t.Errorf("vendor %s (%s, price %q) passed a %d budget",
				v.ID, v.Name, v.BasePrice, budget.For(v.Category))
		}
	}
}

func TestMatchUnknownPriceNeverPassesBudget(t *testing.T) {
	budget := domain.BudgetInfo{Dress: 10000}
	got := application.Match(sampleVendors(), application.MatchQuery{
		Category: domain.CategoryDress,
		Budget:   &budget,
	})
	for _, v := range got {
		if v.ID == "d3" {
			t.Fatal("unknown-price vendor slipped through the budget filter")
		}
	}
}

func TestMatchNoBudgetShowsUnknownPrices(t *testing.T) {
	got := application.Match(sampleVendors(), application.MatchQuery{
		Category: domain.CategoryDress,
	})
	if len(got) != 3 {
		t.Fatalf("got %d dress vendors, want 3 (unknown price included)", len(got))
	}
}

func TestMatchCategoryFilter(t *testing.T) {
	got := application.Match(sampleVendors(), application.MatchQuery{
		Category: domain.CategoryMakeup,
	})
	if len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("makeup filter returned %+v", got)
	}
}

func TestMatchPriceSorts(t *testing.T) {
	asc := application.Match(sampleVendors(), application.MatchQuery{Sort: application.SortPriceAsc})
	if asc[0].ID != "m1" {
		t.Fatalf("price_asc first = %s, want m1 (88)", asc[0].ID)
	}
	if asc[len(asc)-1].ID != "d3" {
		t.Fatalf("price_asc last = %s, want d3 (unknown price sorts last)", asc[len(asc)-1].ID)
	}

	desc := application.Match(sampleVendors(), application.MatchQuery{Sort: application.SortPriceDesc})
	if desc[0].ID != "d1" {
		t.Fatalf("price_desc first = %s, want d1 (380)", desc[0].ID)
	}
}

func TestMatchPriceSortStable(t *testing.T) {
	vendors := []domain.Vendor{
		vendor(domain.CategoryStudio, "a", "가", "100"),
		vendor(domain.CategoryStudio, "b", "나", "100"),
		vendor(domain.CategoryStudio, "c", "다", "100"),
	}
	got := application.Match(vendors, application.MatchQuery{Sort: application.SortPriceAsc})
	for i, id := range []string{"a", "b", "c"} {
		if got[i].ID != id {
			t.Fatalf("ties must keep source order, got %v", got)
		}
	}
}

func TestMatchPreferenceFallsBackToName(t *testing.T) {
	got := application.Match(sampleVendors(), application.MatchQuery{
		Category: domain.CategoryStudio,
		Sort:     application.SortPreference,
	})
	for i := 1; i < len(got); i++ {
		if got[i-1].Name > got[i].Name {
			t.Fatalf("preference sort not lexical at %d: %q > %q", i, got[i-1].Name, got[i].Name)
		}
	}
}

func TestParseSortMode(t *testing.T) {
	cases := map[string]application.SortMode{
		"price_asc":  application.SortPriceAsc,
		"PRICE-DESC": application.SortPriceDesc,
		"":           application.SortPreference,
		"popularity": application.SortPreference,
	}
	for raw, want := range cases {
		if got := application.ParseSortMode(raw); got != want {
			t.Errorf("ParseSortMode(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRecommendPerCategory(t *testing.T) {
	budget := domain.BudgetInfo{Studio: 200, Dress: 100, Makeup: 100}
	picks := application.RecommendPerCategory(sampleVendors(), budget)

	// Studio: s3 extracts 190 which beats s1's 198.
	if pick, ok := picks[domain.CategoryStudio]; !ok || pick.ID != "s3" {
		t.Fatalf("studio pick = %+v, want s3", pick)
	}
	// Dress: nothing fits a 100 ceiling - the category contributes nothing.
	if _, ok := picks[domain.CategoryDress]; ok {
		t.Fatal("dress pick exists despite zero in-budget vendors")
	}
	if pick, ok := picks[domain.CategoryMakeup]; !ok || pick.ID != "m1" {
		t.Fatalf("makeup pick = %+v, want m1", pick)
	}
}
