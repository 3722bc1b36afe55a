// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/talentflow/auth"
	"github.com/danielhkuo/talentflow/cliparse"
	"github.com/danielhkuo/talentflow/middleware"
	"github.com/danielhkuo/talentflow/models"
)

// AuthHandler checks the single configured admin login. Mock resource
// routes never look at the issued token.
type AuthHandler struct {
	cfg cliparse.Config
	now func() time.Time
}

func NewAuthHandler(cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg, now: time.Now}
}

func adminUser(username string) models.User {
	return models.User{Username: username, Name: "Admin User", Role: "admin"}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckCredentials(req.Username, req.Password, h.cfg.AdminUsername, h.cfg.AdminPassword); err != nil {
		slog.Warn("login failed", "username", req.Username, "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateSessionToken(req.Username, h.cfg.SessionSalt, h.now())
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("login succeeded", "username", req.Username)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  adminUser(req.Username),
	})
}

// Session handles GET /api/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	username, err := auth.ValidateSessionToken(token, h.cfg.SessionSalt, h.now())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, adminUser(username))
}
