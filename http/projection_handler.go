package http

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"wealth-objective/domain"
	"wealth-objective/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
	logger  *zap.Logger
}

func NewProjectionHandler(service *service.ProjectionService, logger *zap.Logger) *ProjectionHandler {
	return &ProjectionHandler{service: service, logger: logger}
}

func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.Project(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, result)
}

func (h *ProjectionHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, nil, h.logger, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.service.History(r.Context(), limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, records)
}
