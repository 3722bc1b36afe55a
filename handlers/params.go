// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/talentflow/db"
	"github.com/danielhkuo/talentflow/middleware"
)

// pathID parses the named path value as an int64 id. On failure it
// writes a 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt reads a positive integer query parameter, falling back to def.
func queryInt(r *http.Request, key string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func queryString(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}

// storeFailed maps a store error onto a response. ErrNotFound becomes a
// 404 with notFound as the message.
func storeFailed(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
	case errors.Is(err, db.ErrSlugTaken):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Slug already exists")
	case errors.Is(err, context.Canceled):
		slog.Info("request canceled", "path", r.URL.Path, "request_id", middleware.RequestID(r.Context()))
	default:
		slog.Error("database error",
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.RequestID(r.Context()),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
