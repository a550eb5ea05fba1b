package application

import (
	"context"
	"log"
	"sync"

	"github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

// Aggregator fans a fetch out to every registered vendor source and joins
// the results. One source going down must never hide the other sources'
// vendors, so the join waits for all branches and records failures instead
// of short-circuiting.
type Aggregator struct {
	logger  *log.Logger
	sources []VendorSource
}

// NewAggregator wires the category sources into an aggregator.
func NewAggregator(logger *log.Logger, sources ...VendorSource) *Aggregator {
	return &Aggregator{logger: logger, sources: sources}
}

// SourceCount returns the number of registered sources.
func (a *Aggregator) SourceCount() int {
	return len(a.sources)
}

// FetchAll queries all sources concurrently and settles once every source
// has answered or failed. Results are concatenated in registration order
// and deduplicated by (category, id), keeping the first-seen record. When
// budget is non-nil, each source receives its category's ceiling as a
// pre-filter hint.
func (a *Aggregator) FetchAll(ctx context.Context, budget *domain.BudgetInfo) FetchResult {
	type settled struct {
		vendors []domain.Vendor
		err     error
	}

	results := make([]settled, len(a.sources))

	var wg sync.WaitGroup
	for i, source := range a.sources {
		wg.Add(1)
		go func(i int, source VendorSource) {
			defer wg.Done()
			hint := 0
			if budget != nil {
				hint = budget.For(source.Category())
			}
			vendors, err := source.Fetch(ctx, hint)
			results[i] = settled{vendors: vendors, err: err}
		}(i, source)
	}
	wg.Wait()

	var out FetchResult
	seen := make(map[domain.VendorKey]struct{})
	for i, source := range a.sources {
		if err := results[i].err; err != nil {
			a.logger.Printf("vendor source failed category=%s err=%v", source.Category(), err)
			out.Failures = append(out.Failures, SourceFailure{
				Category: source.Category(),
				Err:      err,
			})
			continue
		}
		for _, vendor := range results[i].vendors {
			key := vendor.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out.Vendors = append(out.Vendors, vendor)
		}
	}

	return out
}
