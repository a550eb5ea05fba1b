package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	fittingapp "github.com/wedifit/wedifit-services/api/internal/fitting/application"
	fitting "github.com/wedifit/wedifit-services/api/internal/fitting/domain"
	"github.com/wedifit/wedifit-services/api/internal/infrastructure/memory"
	"github.com/wedifit/wedifit-services/api/internal/interfaces/http/common"
)

const (
	garmentFetchTimeout = 10 * time.Second
	analyzeTimeout      = 60 * time.Second
	compositeTimeout    = 120 * time.Second
)

func (h *Handler) garmentListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), garmentFetchTimeout)
		defer cancel()

		garments, err := h.garments.List(ctx)
		if err != nil {
			h.logger.Printf("garment list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusBadGateway, "드레스 목록을 불러오지 못했습니다")
			return
		}

		items := make([]garmentResponse, 0, len(garments))
		for _, garment := range garments {
			items = append(items, buildGarmentResponse(garment))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, garmentListResponse{Items: items, Total: len(items)})
	}
}

func (h *Handler) fittingPhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxPhotoUploadBytes)
		if err := r.ParseMultipartForm(common.MaxPhotoUploadBytes); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "사진 업로드 형식이 올바르지 않습니다")
			return
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "사진 파일이 필요합니다")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			common.WriteError(h.logger, w, http.StatusBadRequest, "이미지 파일만 업로드할 수 있습니다")
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			h.logger.Printf("photo read failed session=%q err=%v", record.ID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "사진 업로드에 실패했습니다")
			return
		}

		updated, err := h.sessions.Update(record.ID, func(rec *memory.Record) error {
			rec.Fitting.AttachPhoto(fitting.Photo{
				Filename:    header.Filename,
				ContentType: contentType,
				Data:        data,
			})
			return nil
		})
		if err != nil {
			common.WriteError(h.logger, w, http.StatusNotFound, "세션을 찾을 수 없습니다")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildFittingStateResponse(updated.Fitting))
	}
}

func (h *Handler) fittingAnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
		defer cancel()

		// The remote call runs on a snapshot so the store lock is not held
		// for its duration; the resulting state replaces the stored one.
		state := record.Fitting
		runErr := h.pipeline.RunAnalysis(ctx, &state)

		if runErr == nil || errors.Is(runErr, fittingapp.ErrAnalysisFailed) {
			if _, err := h.sessions.Update(record.ID, func(rec *memory.Record) error {
				rec.Fitting = state
				return nil
			}); err != nil {
				common.WriteError(h.logger, w, http.StatusNotFound, "세션을 찾을 수 없습니다")
				return
			}
		}

		switch {
		case runErr == nil:
			common.WriteJSON(h.logger, w, http.StatusOK, buildFittingStateResponse(state))
		case errors.Is(runErr, fitting.ErrNoPhoto):
			common.WriteError(h.logger, w, http.StatusBadRequest, "사진을 먼저 업로드해주세요")
		case errors.Is(runErr, fitting.ErrInvalidTransition):
			common.WriteError(h.logger, w, http.StatusConflict, "지금은 분석을 시작할 수 없습니다")
		case errors.Is(runErr, fittingapp.ErrAnalysisFailed):
			common.WriteError(h.logger, w, http.StatusBadGateway, "신체 분석에 실패했습니다. 다시 시도해주세요")
		default:
			h.logger.Printf("analysis failed session=%q err=%v", record.ID, runErr)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "신체 분석 처리 중 오류가 발생했습니다")
		}
	}
}

type manualEntryRequest struct {
	BodyShape      string `json:"bodyShape"`
	Concern        string `json:"concern"`
	CorrectionGoal string `json:"correctionGoal"`
}

func (h *Handler) fittingManualHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		var req manualEntryRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxJSONRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "요청 본문을 해석할 수 없습니다")
			return
		}
		if strings.TrimSpace(req.BodyShape) == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "체형 정보를 입력해주세요")
			return
		}

		updated, err := h.sessions.Update(record.ID, func(rec *memory.Record) error {
			return h.pipeline.ApplyManualEntry(&rec.Fitting, fittingapp.ManualEntry{
				BodyShape:      strings.TrimSpace(req.BodyShape),
				Concern:        strings.TrimSpace(req.Concern),
				CorrectionGoal: strings.TrimSpace(req.CorrectionGoal),
			})
		})
		if err != nil {
			if errors.Is(err, fitting.ErrInvalidTransition) {
				common.WriteError(h.logger, w, http.StatusConflict, "사진 업로드 단계에서만 입력할 수 있습니다")
				return
			}
			h.logger.Printf("manual entry failed session=%q err=%v", record.ID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "체형 정보 저장에 실패했습니다")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildFittingStateResponse(updated.Fitting))
	}
}

func (h *Handler) fittingToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}
		garmentID := strings.TrimSpace(chi.URLParam(r, "garmentID"))
		if garmentID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "드레스 ID가 지정되지 않았습니다")
			return
		}

		var selected bool
		updated, err := h.sessions.Update(record.ID, func(rec *memory.Record) error {
			var toggleErr error
			selected, toggleErr = rec.Fitting.ToggleGarment(garmentID)
			return toggleErr
		})
		if err != nil {
			if errors.Is(err, fitting.ErrInvalidTransition) {
				common.WriteError(h.logger, w, http.StatusConflict, "드레스를 선택할 수 없는 단계입니다")
				return
			}
			h.logger.Printf("garment toggle failed session=%q garment=%q err=%v", record.ID, garmentID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "드레스 선택에 실패했습니다")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, toggleResponse{
			Selected:         selected,
			SelectedGarments: append([]string{}, updated.Fitting.Selected...),
		})
	}
}

func (h *Handler) fittingCompositeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), compositeTimeout)
		defer cancel()

		state := record.Fitting
		runErr := h.pipeline.RunComposite(ctx, &state)

		if runErr == nil || errors.Is(runErr, fittingapp.ErrCompositeFailed) {
			if _, err := h.sessions.Update(record.ID, func(rec *memory.Record) error {
				rec.Fitting = state
				return nil
			}); err != nil {
				common.WriteError(h.logger, w, http.StatusNotFound, "세션을 찾을 수 없습니다")
				return
			}
		}

		switch {
		case runErr == nil:
			common.WriteJSON(h.logger, w, http.StatusOK, buildFittingStateResponse(state))
		case errors.Is(runErr, fitting.ErrNoPhoto):
			common.WriteError(h.logger, w, http.StatusBadRequest, "사진을 먼저 업로드해주세요")
		case errors.Is(runErr, fitting.ErrNoSelection):
			common.WriteError(h.logger, w, http.StatusBadRequest, "드레스를 먼저 선택해주세요")
		case errors.Is(runErr, fitting.ErrInvalidTransition):
			common.WriteError(h.logger, w, http.StatusConflict, "지금은 피팅 이미지를 생성할 수 없습니다")
		case errors.Is(runErr, fittingapp.ErrCompositeFailed):
			common.WriteError(h.logger, w, http.StatusBadGateway, "가상 피팅 이미지 생성에 실패했습니다. 다시 시도해주세요")
		default:
			h.logger.Printf("composite failed session=%q err=%v", record.ID, runErr)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "가상 피팅 처리 중 오류가 발생했습니다")
		}
	}
}
