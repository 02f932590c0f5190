package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"SiteModels/internal/service"
)

// ContentHandler обслуживает дисклеймеры и обучающие видео.
type ContentHandler struct {
	Disclaimers *service.DisclaimerService
	Videos      *service.TrainingVideoService
	Logger      *zap.SugaredLogger
}

// NewContentHandler создаёт хендлер контента.
func NewContentHandler(d *service.DisclaimerService, v *service.TrainingVideoService, logger *zap.SugaredLogger) *ContentHandler {
	return &ContentHandler{Disclaimers: d, Videos: v, Logger: logger}
}

type disclaimerRequest struct {
	DisDescription string `json:"disDescription"`
}

func (h *ContentHandler) CreateDisclaimer(w http.ResponseWriter, r *http.Request) {
	var req disclaimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	d, err := h.Disclaimers.Create(r.Context(), req.DisDescription)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondCreated(w, "Disclaimer is created successfully", d)
}

func (h *ContentHandler) ListDisclaimers(w http.ResponseWriter, r *http.Request) {
	f := parseListFilter(r)
	list, total, err := h.Disclaimers.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, "Disclaimers are retrieved successfully", f, total, list)
}

func (h *ContentHandler) GetDisclaimer(w http.ResponseWriter, r *http.Request) {
	d, err := h.Disclaimers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Disclaimer is retrieved successfully", d)
}

func (h *ContentHandler) UpdateDisclaimer(w http.ResponseWriter, r *http.Request) {
	var req disclaimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	d, err := h.Disclaimers.Update(r.Context(), chi.URLParam(r, "id"), req.DisDescription)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Disclaimer is updated successfully", d)
}

func (h *ContentHandler) DeleteDisclaimer(w http.ResponseWriter, r *http.Request) {
	if err := h.Disclaimers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Disclaimer is deleted successfully", nil)
}

func (h *ContentHandler) CreateTrainingVideo(w http.ResponseWriter, r *http.Request) {
	var req service.TrainingVideoInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	v, err := h.Videos.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondCreated(w, "Training video is created successfully", v)
}

func (h *ContentHandler) ListTrainingVideos(w http.ResponseWriter, r *http.Request) {
	f := parseListFilter(r)
	list, total, err := h.Videos.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, "Training videos are retrieved successfully", f, total, list)
}

func (h *ContentHandler) GetTrainingVideo(w http.ResponseWriter, r *http.Request) {
	v, err := h.Videos.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Training video is retrieved successfully", v)
}

func (h *ContentHandler) UpdateTrainingVideo(w http.ResponseWriter, r *http.Request) {
	var req service.TrainingVideoInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	v, err := h.Videos.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Training video is updated successfully", v)
}

func (h *ContentHandler) DeleteTrainingVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.Videos.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Training video is deleted successfully", nil)
}
