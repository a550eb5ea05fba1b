package public

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wedifit/wedifit-services/api/internal/infrastructure/memory"
	"github.com/wedifit/wedifit-services/api/internal/interfaces/http/common"
)

func (h *Handler) sessionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record := h.sessions.Create()
		common.WriteJSON(h.logger, w, http.StatusCreated, buildSessionResponse(record))
	}
}

func (h *Handler) sessionDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := h.loadSession(w, r)
		if !ok {
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildSessionResponse(record))
	}
}

// loadSession resolves the {id} route parameter. Writes the error response
// itself so callers can simply bail out.
func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) (memory.Record, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		common.WriteError(h.logger, w, http.StatusBadRequest, "세션 ID가 지정되지 않았습니다")
		return memory.Record{}, false
	}

	record, err := h.sessions.Get(id)
	if err != nil {
		if errors.Is(err, memory.ErrSessionNotFound) {
			common.WriteError(h.logger, w, http.StatusNotFound, "세션을 찾을 수 없습니다")
			return memory.Record{}, false
		}
		h.logger.Printf("session fetch failed id=%q err=%v", id, err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, "세션 조회에 실패했습니다")
		return memory.Record{}, false
	}
	return record, true
}
