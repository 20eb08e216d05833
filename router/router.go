// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/dmless/cliparse"
	"github.com/danielhkuo/dmless/handlers"
	"github.com/danielhkuo/dmless/middleware"
	"github.com/danielhkuo/dmless/store"
	"github.com/danielhkuo/dmless/tally"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)
	reg := prometheus.NewRegistry()
	aggregator := tally.NewAggregator(tally.NewMetrics(reg))

	jobHandler := handlers.NewJobHandler(st, cfg)
	screeningHandler := handlers.NewScreeningHandler(st, aggregator, cfg)
	dashboardHandler := handlers.NewDashboardHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Job management (admin operations)
	mux.HandleFunc("POST /jobs", middleware.WithLogging(jobHandler.CreateJob))
	mux.HandleFunc("GET /jobs/{id}/admin", middleware.WithLogging(jobHandler.GetJobAdmin))
	mux.HandleFunc("POST /jobs/{id}/close", middleware.WithLogging(jobHandler.CloseJob))
	mux.HandleFunc("GET /jobs/{id}/stats", middleware.WithLogging(jobHandler.GetJobStats))

	// Screening link (public)
	mux.HandleFunc("GET /links/{slug}", middleware.WithLogging(screeningHandler.GetLink))
	mux.HandleFunc("POST /links/{slug}/sessions", middleware.WithLogging(screeningHandler.CreateSession))

	// Candidate sessions (X-Candidate-Token)
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(screeningHandler.GetSession))
	mux.HandleFunc("POST /sessions/{id}/start", middleware.WithLogging(screeningHandler.StartSession))
	mux.HandleFunc("POST /sessions/{id}/answers", middleware.WithLogging(screeningHandler.Answer))
	mux.HandleFunc("POST /sessions/{id}/application", middleware.WithLogging(screeningHandler.SubmitApplication))

	// Dashboard and metrics
	mux.HandleFunc("GET /dashboard", middleware.WithLogging(dashboardHandler.GetDashboard))
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dmless API v1"))
	})

	return mux
}
