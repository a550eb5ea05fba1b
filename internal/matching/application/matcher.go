package application

import (
	"sort"
	"strings"

	"github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

// SortMode selects the ordering of a matched vendor list.
type SortMode string

const (
	// SortPreference ranks by preference. Without any other ranking
	// signal it falls back to lexical ordering by display name.
	SortPreference SortMode = "preference"
	SortPriceAsc   SortMode = "price_asc"
	SortPriceDesc  SortMode = "price_desc"
)

// ParseSortMode normalises a query value; anything unknown falls back to
// the preference sort.
func ParseSortMode(raw string) SortMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "price_asc", "price-asc":
		return SortPriceAsc
	case "price_desc", "price-desc":
		return SortPriceDesc
	}
	return SortPreference
}

// MatchQuery describes one display-list request against the aggregate.
type MatchQuery struct {
	// Category filters to one catalog partition; empty means all.
	Category domain.Category
	Sort     SortMode
	// Budget applies per-category ceilings. Nil means no budget filter;
	// unknown-price vendors then stay visible (without a price label)
	// instead of being dropped.
	Budget *domain.BudgetInfo
}

// Match filters and orders the aggregated vendors into a final display
// list. Ties keep source order, so every sort is stable.
func Match(vendors []domain.Vendor, q MatchQuery) []domain.Vendor {
	matched := make([]domain.Vendor, 0, len(vendors))
	for _, vendor := range vendors {
		if q.Category != "" && vendor.Category != q.Category {
			continue
		}
		if q.Budget != nil && !vendor.WithinBudget(q.Budget.For(vendor.Category)) {
			continue
		}
		matched = append(matched, vendor)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return lessByPrice(matched[i], matched[j])
		})
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return lessByPrice(matched[j], matched[i])
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Name < matched[j].Name
		})
	}

	return matched
}

// lessByPrice compares the same minimum price the budget filter uses.
// Unknown prices always order after known ones.
func lessByPrice(a, b domain.Vendor) bool {
	pa, pb := a.MinPriceManwon(), b.MinPriceManwon()
	if pa == domain.PriceUnknown {
		return false
	}
	if pb == domain.PriceUnknown {
		return true
	}
	return pa < pb
}

// RecommendPerCategory reduces the aggregate to the single cheapest
// in-budget vendor per category. A category with zero in-budget vendors
// contributes nothing - never a placeholder.
func RecommendPerCategory(vendors []domain.Vendor, budget domain.BudgetInfo) map[domain.Category]domain.Vendor {
	picks := make(map[domain.Category]domain.Vendor)

	for _, category := range domain.Categories {
		inBudget := Match(vendors, MatchQuery{
			Category: category,
			Sort:     SortPriceAsc,
			Budget:   &budget,
		})
		if len(inBudget) == 0 {
			continue
		}
		picks[category] = inBudget[0]
	}

	return picks
}
