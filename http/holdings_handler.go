package http

import (
	"net/http"

	"go.uber.org/zap"

	"wealth-objective/service"
)

type HoldingsHandler struct {
	service *service.HoldingsService
	logger  *zap.Logger
}

func NewHoldingsHandler(service *service.HoldingsService, logger *zap.Logger) *HoldingsHandler {
	return &HoldingsHandler{service: service, logger: logger}
}

// Import reads a CSV body. Query parameters asset_column and value_column
// override the detected columns.
func (h *HoldingsHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	opts := service.HoldingsOptions{
		AssetColumn: r.URL.Query().Get("asset_column"),
		ValueColumn: r.URL.Query().Get("value_column"),
	}

	result, err := h.service.Import(http.MaxBytesReader(w, r.Body, maxBodyBytes), opts)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, result)
}
