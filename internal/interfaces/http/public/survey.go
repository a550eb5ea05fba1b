package public

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wedifit/wedifit-services/api/internal/infrastructure/memory"
	"github.com/wedifit/wedifit-services/api/internal/interfaces/http/common"
	surveyapp "github.com/wedifit/wedifit-services/api/internal/survey/application"
	survey "github.com/wedifit/wedifit-services/api/internal/survey/domain"
)

type surveyPatchRequest struct {
	PhotoBudget  *string `json:"photoBudget"`
	GuestCount   *string `json:"guestCount"`
	Style        *string `json:"style"`
	PrepStyle    *string `json:"prepStyle"`
	ToggleMood   *string `json:"toggleMood"`
	BudgetStudio *int    `json:"budgetStudio"`
	BudgetDress  *int    `json:"budgetDress"`
	BudgetMakeup *int    `json:"budgetMakeup"`
}

func (h *Handler) surveyUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		var req surveyPatchRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxJSONRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "요청 본문을 해석할 수 없습니다")
			return
		}

		patch := surveyapp.AnswerPatch{
			BudgetStudio: req.BudgetStudio,
			BudgetDress:  req.BudgetDress,
			BudgetMakeup: req.BudgetMakeup,
		}
		if req.PhotoBudget != nil {
			v := survey.PhotoBudgetStance(*req.PhotoBudget)
			patch.PhotoBudget = &v
		}
		if req.GuestCount != nil {
			v := survey.GuestScale(*req.GuestCount)
			patch.GuestCount = &v
		}
		if req.Style != nil {
			v := survey.CeremonyStyle(*req.Style)
			patch.Style = &v
		}
		if req.PrepStyle != nil {
			v := survey.PrepStyle(*req.PrepStyle)
			patch.PrepStyle = &v
		}

		updated, err := h.sessions.Update(record.ID, func(rec *memory.Record) error {
			if err := h.surveys.UpdateAnswers(&rec.Survey, patch); err != nil {
				return err
			}
			if req.ToggleMood != nil {
				return h.surveys.ToggleMood(&rec.Survey, *req.ToggleMood)
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, survey.ErrAlreadySubmitted) {
				common.WriteError(h.logger, w, http.StatusConflict, "이미 제출된 설문은 수정할 수 없습니다")
				return
			}
			common.WriteError(h.logger, w, http.StatusBadRequest, "잘못된 설문 값입니다")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildSurveyStateResponse(updated.Survey))
	}
}

func (h *Handler) surveyNextHandler() http.HandlerFunc {
	return h.surveyStepHandler(func(s *survey.Survey) error { return h.surveys.Advance(s) })
}

func (h *Handler) surveyBackHandler() http.HandlerFunc {
	return h.surveyStepHandler(func(s *survey.Survey) error { return h.surveys.Retreat(s) })
}

func (h *Handler) surveyStepHandler(move func(*survey.Survey) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		updated, err := h.sessions.Update(record.ID, func(rec *memory.Record) error {
			return move(&rec.Survey)
		})
		if err != nil {
			switch {
			case errors.Is(err, survey.ErrMoodRequired):
				common.WriteError(h.logger, w, http.StatusBadRequest, "무드 이미지를 하나 이상 선택해주세요")
			case errors.Is(err, survey.ErrInvalidTransition):
				common.WriteError(h.logger, w, http.StatusConflict, "이동할 수 없는 단계입니다")
			default:
				h.logger.Printf("survey step move failed id=%q err=%v", record.ID, err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "설문 단계 이동에 실패했습니다")
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildSurveyStateResponse(updated.Survey))
	}
}

func (h *Handler) surveySubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		// The narrator may take seconds; run it on a snapshot so the store
		// lock is not held across the remote call.
		state := record.Survey
		if err := h.surveys.Submit(r.Context(), &state); err != nil {
			switch {
			case errors.Is(err, survey.ErrAlreadySubmitted):
				common.WriteError(h.logger, w, http.StatusConflict, "이미 제출된 설문입니다")
			case errors.Is(err, survey.ErrInvalidTransition):
				common.WriteError(h.logger, w, http.StatusConflict, "예산 단계에서만 제출할 수 있습니다")
			default:
				h.logger.Printf("survey submit failed id=%q err=%v", record.ID, err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "설문 제출에 실패했습니다")
			}
			return
		}

		updated, err := h.sessions.Update(record.ID, func(rec *memory.Record) error {
			if rec.Survey.Submitted() {
				return survey.ErrAlreadySubmitted
			}
			rec.Survey = state
			return nil
		})
		if err != nil {
			common.WriteError(h.logger, w, http.StatusConflict, "이미 제출된 설문입니다")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildSurveyStateResponse(updated.Survey))
	}
}
