package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"SiteModels/internal/repo"
	"SiteModels/internal/service"
)

// Meta — пагинация в ответах списков.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Envelope — единый формат успешного ответа API.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Meta    *Meta  `json:"meta,omitempty"`
	Data    any    `json:"data"`
}

// ErrorSource — позиция ошибки для клиента.
type ErrorSource struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorEnvelope — единый формат ошибки API.
type ErrorEnvelope struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	ErrorSources []ErrorSource `json:"errorSources"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func respondCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func respondPage(w http.ResponseWriter, message string, f repo.ListFilter, total int64, data any) {
	f = f.Normalize()
	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Meta:    &Meta{Page: f.Page, Limit: f.Limit, Total: total},
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, message string, sources ...ErrorSource) {
	if sources == nil {
		sources = []ErrorSource{}
	}
	writeJSON(w, status, ErrorEnvelope{Success: false, Message: message, ErrorSources: sources})
}

// respondServiceError транслирует ошибки сервисного слоя в HTTP‑статусы.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidCategory):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrUserBlocked):
		respondError(w, http.StatusForbidden, "User is blocked")
	case errors.Is(err, service.ErrUserDeleted):
		respondError(w, http.StatusForbidden, "User is deleted")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusConflict, "Email is already registered")
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
