package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/wedifit/wedifit-services/api/internal/interfaces/http/common"
	matchingapp "github.com/wedifit/wedifit-services/api/internal/matching/application"
	matching "github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

const vendorFetchTimeout = 10 * time.Second

func (h *Handler) vendorListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), vendorFetchTimeout)
		defer cancel()

		query := r.URL.Query()
		category, ok := common.CanonicalCategory(query.Get("category"))
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "알 수 없는 카테고리입니다")
			return
		}
		sortMode := matchingapp.ParseSortMode(query.Get("sort"))

		// A session with a submitted survey applies its frozen budget.
		var budget *matching.BudgetInfo
		if sessionID := strings.TrimSpace(query.Get("session")); sessionID != "" {
			record, err := h.sessions.Get(sessionID)
			if err != nil {
				common.WriteError(h.logger, w, http.StatusNotFound, "세션을 찾을 수 없습니다")
				return
			}
			budget = record.Survey.Budget
		}

		// An explicit budget (만원) overrides the session's and applies the
		// same ceiling to every category.
		if ceiling, ok := common.ParsePositiveInt(query.Get("budget"), 0); ok {
			budget = &matching.BudgetInfo{Studio: ceiling, Dress: ceiling, Makeup: ceiling}
		}

		result := h.aggregator.FetchAll(ctx, budget)
		if result.AllFailed(h.aggregator.SourceCount()) {
			common.WriteError(h.logger, w, http.StatusBadGateway,
				"업체 정보를 불러오지 못했습니다. 잠시 후 다시 시도해주세요")
			return
		}

		vendors := matchingapp.Match(result.Vendors, matchingapp.MatchQuery{
			Category: category,
			Sort:     sortMode,
			Budget:   budget,
		})

		items := make([]vendorResponse, 0, len(vendors))
		for _, vendor := range vendors {
			items = append(items, buildVendorResponse(vendor))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, vendorListResponse{
			Items:            items,
			Total:            len(items),
			FailedCategories: failedCategories(result),
		})
	}
}

func (h *Handler) recommendationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}
		if !record.Survey.Submitted() || record.Survey.Budget == nil {
			common.WriteError(h.logger, w, http.StatusConflict, "설문을 먼저 제출해주세요")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), vendorFetchTimeout)
		defer cancel()

		result := h.aggregator.FetchAll(ctx, record.Survey.Budget)
		if result.AllFailed(h.aggregator.SourceCount()) {
			common.WriteError(h.logger, w, http.StatusBadGateway,
				"업체 정보를 불러오지 못했습니다. 잠시 후 다시 시도해주세요")
			return
		}

		picks := matchingapp.RecommendPerCategory(result.Vendors, *record.Survey.Budget)

		var resp recommendationResponse
		if pick, ok := picks[matching.CategoryStudio]; ok {
			v := buildVendorResponse(pick)
			resp.Studio = &v
		}
		if pick, ok := picks[matching.CategoryDress]; ok {
			v := buildVendorResponse(pick)
			resp.Dress = &v
		}
		if pick, ok := picks[matching.CategoryMakeup]; ok {
			v := buildVendorResponse(pick)
			resp.Makeup = &v
		}

		common.WriteJSON(h.logger, w, http.StatusOK, resp)
	}
}

func failedCategories(result matchingapp.FetchResult) []string {
	if len(result.Failures) == 0 {
		return nil
	}
	categories := make([]string, 0, len(result.Failures))
	for _, failure := range result.Failures {
		categories = append(categories, string(failure.Category))
	}
	return categories
}
