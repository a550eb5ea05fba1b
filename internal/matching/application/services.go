package application

import (
	"context"

	"github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

// VendorSource is the port to one remote category source.
// VendorSource 는 카테고리별 원격 업체 소스를 추상화하는 포트.
type VendorSource interface {
	// Category identifies which of the three catalog partitions this
	// source serves.
	Category() domain.Category
	// Fetch returns the source's vendors. A positive maxBudget (만원) is
	// forwarded to the source as a server-side pre-filter hint; zero or
	// negative means no hint.
	Fetch(ctx context.Context, maxBudget int) ([]domain.Vendor, error)
}

// SourceFailure records one source that failed during an aggregate fetch.
type SourceFailure struct {
	Category domain.Category
	Err      error
}

// FetchResult is the aggregate outcome of querying all category sources:
// the deduplicated vendor list plus per-source failures, so the consuming
// view can tell "loaded, zero vendors" apart from "load failed entirely".
type FetchResult struct {
	Vendors  []domain.Vendor
	Failures []SourceFailure
}

// AllFailed reports whether not a single source answered.
func (r FetchResult) AllFailed(totalSources int) bool {
	return totalSources > 0 && len(r.Failures) == totalSources
}
