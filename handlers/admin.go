// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/middleware"
	"github.com/danielhkuo/talentflow/seed"
)

// AdminHandler exposes store maintenance for the settings page.
type AdminHandler struct {
	store *db.Store
	opts  seed.Options
}

func NewAdminHandler(store *db.Store, opts seed.Options) *AdminHandler {
	return &AdminHandler{store: store, opts: opts}
}

// Reset handles POST /api/admin/reset
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := seed.Clear(r.Context(), h.store); err != nil {
		storeFailed(w, r, err, "Not found")
		return
	}

	result, err := seed.Seed(r.Context(), h.store, h.opts)
	if err != nil {
		storeFailed(w, r, err, "Not found")
		return
	}

	slog.Info("store reset", "request_id", middleware.RequestID(r.Context()))
	middleware.JSONResponse(w, http.StatusOK, result)
}

// Counts handles GET /api/admin/counts
func (h *AdminHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.Counts(r.Context())
	if err != nil {
		storeFailed(w, r, err, "Not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}
