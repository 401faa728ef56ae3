package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hackbuddy/hackbuddy/internal/model"
	"github.com/hackbuddy/hackbuddy/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, "email already exists")
			return
		}
		if errors.Is(err, service.ErrProfileCreationFailed) {
			slog.Error("signup profile bootstrap failed", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to create account")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.issueSession(w, user)
	if err != nil {
		slog.Error("failed to issue session", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	slog.Info("user signed up", "user_id", user.ID)
	respondJSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	err = h.issueSession(w, user)
	if err != nil {
		slog.Error("failed to issue session", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, user *model.User) error {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		return err
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
	return nil
}
