package httpapi

import (
	"fmt"
	"net/http"

	"officedir-data/internal/repository"
	"officedir-data/internal/service"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth   service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readBodyJSON(r, &body); err != nil {
		writeError(w, fmt.Errorf("invalid json body: %w", repository.ErrInvalidArgument))
		return
	}

	resp, err := h.auth.Login(r.Context(), service.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	session, err := h.auth.Session(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := h.auth.Logout(r.Context(), bearerToken(r)); err != nil {
		h.logger.Warn("logout failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
