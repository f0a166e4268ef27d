package http

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"wealth-objective/domain"
	"wealth-objective/report"
	"wealth-objective/service"
)

const reportFileName = "eme_wealth_objetive_report.pdf"

type ObjectiveHandler struct {
	service *service.ObjectiveService
	logger  *zap.Logger
}

func NewObjectiveHandler(service *service.ObjectiveService, logger *zap.Logger) *ObjectiveHandler {
	return &ObjectiveHandler{service: service, logger: logger}
}

func (h *ObjectiveHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var input domain.ObjectiveInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.Analyze(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, result)
}

// Report answers with the PDF rendering of the analysis.
func (h *ObjectiveHandler) Report(w http.ResponseWriter, r *http.Request) {
	var input domain.ObjectiveInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.Analyze(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, result, service.ReportHeadYears); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reportFileName+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write report", zap.Error(err))
	}
}
