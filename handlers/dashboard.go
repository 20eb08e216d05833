// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/dmless/cliparse"
	"github.com/danielhkuo/dmless/middleware"
	"github.com/danielhkuo/dmless/models"
	"github.com/danielhkuo/dmless/store"
	"github.com/danielhkuo/dmless/tally"
)

type DashboardHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewDashboardHandler(st *store.Store, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{store: st, cfg: cfg}
}

// GetDashboard handles GET /dashboard
// Lists every job, newest first, with its counters and the totals across jobs.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.ListJobTallies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := models.DashboardResponse{Jobs: make([]models.JobStats, 0, len(jobs))}
	var totals tally.Tally
	for _, jt := range jobs {
		totals.Merge(jt.Tally)
		resp.Jobs = append(resp.Jobs, models.JobStats{
			JobID:     jt.JobID,
			Title:     jt.Title,
			Status:    jt.Status,
			ShareURL:  h.cfg.ShareURL(jt.ShareSlug),
			CreatedAt: jt.CreatedAt,
			Stats:     jt.Tally,
		})
	}
	resp.Totals = totals

	middleware.JSONResponse(w, http.StatusOK, resp)
}
