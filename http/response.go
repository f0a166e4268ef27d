package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"wealth-objective/projection"
)

type errorResponse struct {
	Error      string `json:"error"`
	Constraint string `json:"constraint,omitempty"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind. If-None-Match is only honoured on safe methods.
func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(buf.Bytes()))
	w.Header().Set("ETag", etag)
	if status == http.StatusOK && isSafe(r) && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}

func isSafe(r *http.Request) bool {
	return r != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead)
}

// writeError maps invalid input to 400 and anything else to 500.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var iie *projection.InvalidInputError
	if errors.As(err, &iie) {
		writeJSON(w, nil, logger, http.StatusBadRequest, errorResponse{Error: iie.Message, Constraint: iie.Constraint})
		return
	}
	logger.Error("request failed", zap.Error(err))
	writeJSON(w, nil, logger, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Debug("invalid request body", zap.Error(err))
		writeJSON(w, nil, logger, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
