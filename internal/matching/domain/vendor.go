package domain

// Category partitions the vendor catalog into the three 스드메 groups.
type Category string

const (
	CategoryStudio Category = "Studio"
	CategoryDress  Category = "Dress"
	CategoryMakeup Category = "Makeup"
)

// Categories lists all vendor categories in display order.
var Categories = []Category{CategoryStudio, CategoryDress, CategoryMakeup}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStudio, CategoryDress, CategoryMakeup:
		return true
	}
	return false
}

// AddOnOption is a priced extra a vendor offers on top of its base price.
type AddOnOption struct {
	ID        string
	Name      string
	PriceText string
}

// Vendor represents one aggregated vendor record.
// 업체 식별자는 (카테고리, ID) 쌍. 같은 상호가 두 카테고리에 있으면 별개 업체로 취급한다.
type Vendor struct {
	ID           string
	Name         string
	Category     Category
	BasePrice    string // free-form price text, 만원 units
	Image        string
	Location     string
	AddOns       []AddOnOption
	OtherOptions []string
	PhoneNumber  string
	Instagram    string
}

// VendorKey is the identity of a vendor within the aggregate.
type VendorKey struct {
	Category Category
	ID       string
}

// Key returns the (category, id) identity pair.
func (v Vendor) Key() VendorKey {
	return VendorKey{Category: v.Category, ID: v.ID}
}

// MinPriceManwon extracts the minimum numeric price from the vendor's
// free-form base price text. Returns PriceUnknown when nothing parses.
func (v Vendor) MinPriceManwon() int {
	return MinPrice(v.BasePrice)
}

// WithinBudget reports whether the vendor's minimum price fits under the
// given ceiling. A non-positive budget disables filtering entirely; an
// unknown price never passes a positive budget.
func (v Vendor) WithinBudget(budget int) bool {
	if budget <= 0 {
		return true
	}
	trimmed := v.BasePrice
	if trimmed == "" || trimmed == "0" {
		return false
	}
	min := v.MinPriceManwon()
	if min == PriceUnknown {
		return false
	}
	return min <= budget
}

// BudgetInfo holds the per-category budget ceilings in 만원 units.
// Captured once at survey submission and never mutated afterwards.
type BudgetInfo struct {
	Studio int
	Dress  int
	Makeup int
}

// For returns the ceiling for the given category.
func (b BudgetInfo) For(c Category) int {
	switch c {
	case CategoryStudio:
		return b.Studio
	case CategoryDress:
		return b.Dress
	case CategoryMakeup:
		return b.Makeup
	}
	return 0
}

// Total sums the three ceilings.
func (b BudgetInfo) Total() int {
	return b.Studio + b.Dress + b.Makeup
}
