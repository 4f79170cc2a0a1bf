package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/service"
)

// AuthHandler handles account registration and login
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/register
// - 201: account created
// - 400: missing/invalid fields, or email already registered
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserExists):
			WriteError(w, http.StatusBadRequest, "User already exists", h.logger)
		case errors.Is(err, service.ErrMissingCredentials), errors.Is(err, service.ErrInvalidEmail):
			WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			h.logger.Error("failed to register user", "error", err)
			WriteErrorDetails(w, http.StatusInternalServerError, "Failed to register user", err.Error(), h.logger)
		}
		return
	}

	h.logger.Info("user registered", "user_id", user.ID)
	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created",
		"user":    user,
	}, h.logger)
}

// Login handles POST /api/login
// - 200: credentials valid, session token returned
// - 401: wrong password
// - 404: unknown user
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, "User not found", h.logger)
		case errors.Is(err, service.ErrWrongPassword):
			WriteError(w, http.StatusUnauthorized, "Wrong password", h.logger)
		case errors.Is(err, service.ErrMissingCredentials):
			WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			h.logger.Error("failed to log in user", "error", err)
			WriteErrorDetails(w, http.StatusInternalServerError, "Failed to log in", err.Error(), h.logger)
		}
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	}, h.logger)
}
