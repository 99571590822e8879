package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(handler *Handler, apiKey string) http.Handler {
	calls := http.NewServeMux()
	calls.HandleFunc("POST /api/calls/analyze", handler.Analyze)
	calls.HandleFunc("GET /api/calls/result/{call_id}", handler.Result)
	calls.HandleFunc("GET /api/calls/stats", handler.Stats)
	calls.HandleFunc("GET /api/calls/export", handler.Export)

	mux := http.NewServeMux()
	mux.Handle("/api/", requireAPIKey(apiKey, calls))
	mux.HandleFunc("GET /healthz", handler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	return withCORS(withObservability(mux))
}
