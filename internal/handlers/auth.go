package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"SiteModels/internal/middleware"
	"SiteModels/internal/service"
)

// AuthHandler обрабатывает вход, обновление токена и смену пароля.
type AuthHandler struct {
	Auth   *service.AuthService
	Logger *zap.SugaredLogger
}

// NewAuthHandler создаёт хендлер аутентификации.
func NewAuthHandler(auth *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login выдаёт access‑токен в теле и refresh‑токен httpOnly‑кукой.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.Logger.Infow("login rejected", "email", req.Email, "error", err)
		respondServiceError(w, err)
		return
	}

	middleware.SetRefreshCookie(w, res.RefreshToken, h.Auth.RefreshTTL())
	respondOK(w, "User logged in successfully", map[string]any{
		"accessToken":         res.AccessToken,
		"needsPasswordChange": res.User.NeedsPasswordChange,
	})
}

// RefreshToken читает refresh‑куку и выдаёт новый access‑токен.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(middleware.RefreshCookieName)
	if err != nil || c.Value == "" {
		respondError(w, http.StatusUnauthorized, "Refresh token is missing")
		return
	}

	access, err := h.Auth.Refresh(r.Context(), c.Value)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Access token retrieved successfully", map[string]any{
		"accessToken": access,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ChangePassword меняет пароль текущего пользователя и снимает
// флаг needsPasswordChange.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "You are not authorized")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.NewPassword) < 5 {
		respondError(w, http.StatusBadRequest, "Password is too short",
			ErrorSource{Path: "newPassword", Message: "must be at least 5 characters"})
		return
	}

	if err := h.Auth.ChangePassword(r.Context(), claims.UserID, req.OldPassword, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Password changed successfully", nil)
}
