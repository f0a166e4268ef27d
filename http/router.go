package http

import (
	"net/http"

	"go.uber.org/zap"

	"wealth-objective/service"
)

const maxBodyBytes = 1 << 20

// Services groups what the router serves.
type Services struct {
	Projection *service.ProjectionService
	Objective  *service.ObjectiveService
	Holdings   *service.HoldingsService
}

// NewRouter builds the API mux. Every business route goes through the rate
// limiter and the metrics middleware.
func NewRouter(svc Services, limiter *RateLimiter, metrics *Metrics, logger *zap.Logger) http.Handler {
	projectionHandler := NewProjectionHandler(svc.Projection, logger)
	objectiveHandler := NewObjectiveHandler(svc.Objective, logger)
	holdingsHandler := NewHoldingsHandler(svc.Holdings, logger)

	mux := http.NewServeMux()
	route := func(path string, h http.HandlerFunc) {
		mux.Handle(path, metrics.Instrument(path, RateLimitMiddleware(limiter, logger, h)))
	}

	route("/projection", projectionHandler.Project)
	route("/projection/history", projectionHandler.History)
	route("/objective", objectiveHandler.Analyze)
	route("/objective/report", objectiveHandler.Report)
	route("/holdings/import", holdingsHandler.Import)

	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
