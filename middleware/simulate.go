// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/talentflow/simulate"
)

// WithNetworkSimulation delays each request and fails some of them with
// 503 before next runs. If the client goes away during the delay, next
// is never called and nothing is written.
func WithNetworkSimulation(sim *simulate.Simulator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := sim.Do(r.Context(), func(ctx context.Context) error {
			next(w, r.WithContext(ctx))
			return nil
		})

		switch {
		case err == nil:
		case errors.Is(err, simulate.ErrNetwork):
			slog.Warn("simulated network failure",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestID(r.Context()),
			)
			ErrorResponse(w, http.StatusServiceUnavailable, simulate.NetworkErrorMessage)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			slog.Info("request abandoned during simulated delay",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestID(r.Context()),
			)
		default:
			slog.Error("network simulation failed", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}
