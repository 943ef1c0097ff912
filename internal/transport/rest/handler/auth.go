package handler

import (
	"advisoryboard/internal/model"
	"advisoryboard/internal/service"
	"advisoryboard/internal/transport/rest/middleware"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc *service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, logger: logger}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authSvc.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials), errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrPasswordTooLong):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, service.ErrUserExists):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.logger.Error("Register failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("User registered", zap.String("user_id", user.ID))
	writeJSON(w, http.StatusCreated, model.RegisterResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.authSvc.Logout(r.Context(), claims); err != nil {
		h.logger.Error("Logout failed", zap.String("user_id", claims.UserID()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.authSvc.CurrentUser(r.Context(), claims)
	if errors.Is(err, service.ErrInvalidToken) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err != nil {
		h.logger.Error("Me failed", zap.String("user_id", claims.UserID()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userId":    user.ID,
		"username":  user.Username,
		"createdAt": user.CreatedAt,
	})
}
