package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"SiteModels/internal/middleware"
	"SiteModels/internal/model"
	"SiteModels/internal/service"
)

// UserHandler обслуживает учётные записи и профили admin/buyer.
type UserHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(users *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// Me возвращает учётную запись и профиль текущего пользователя.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "You are not authorized")
		return
	}

	me, err := h.Users.Me(r.Context(), claims.UserID)
	if err != nil {
		h.Logger.Errorw("me lookup failed", "userId", claims.UserID, "error", err)
		respondServiceError(w, err)
		return
	}
	respondOK(w, "User is retrieved successfully", me)
}

// createProfileData — поле data формы create-admin/create-buyer.
type createProfileData struct {
	Password string `json:"password"`
	Admin    *struct {
		Name  model.PersonName `json:"name"`
		Email string           `json:"email"`
	} `json:"admin,omitempty"`
	Buyer *struct {
		Name    model.PersonName `json:"name"`
		Email   string           `json:"email"`
		Address string           `json:"address"`
	} `json:"buyer,omitempty"`
}

// CreateAdmin — multipart: data JSON + опциональный file с аватаром.
func (h *UserHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var data createProfileData
	if err := parseMultipartData(r, &data, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if data.Admin == nil {
		respondError(w, http.StatusBadRequest, "Missing admin payload",
			ErrorSource{Path: "admin", Message: "admin object is required"})
		return
	}
	img, err := formFile(r, formFieldFile)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.Users.CreateAdmin(r.Context(), service.CreateProfileInput{
		Password:   data.Password,
		Email:      data.Admin.Email,
		Name:       data.Admin.Name,
		ProfileImg: img,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondCreated(w, "Admin is created successfully", a)
}

// CreateBuyer — multipart, как CreateAdmin, плюс address.
func (h *UserHandler) CreateBuyer(w http.ResponseWriter, r *http.Request) {
	var data createProfileData
	if err := parseMultipartData(r, &data, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if data.Buyer == nil {
		respondError(w, http.StatusBadRequest, "Missing buyer payload",
			ErrorSource{Path: "buyer", Message: "buyer object is required"})
		return
	}
	img, err := formFile(r, formFieldFile)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.Users.CreateBuyer(r.Context(), service.CreateProfileInput{
		Password:   data.Password,
		Email:      data.Buyer.Email,
		Name:       data.Buyer.Name,
		Address:    data.Buyer.Address,
		ProfileImg: img,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondCreated(w, "Buyer is created successfully", b)
}

// ListAdmins — админский список, мягко удалённые включены.
func (h *UserHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	f := parseListFilter(r)
	f.IncludeDeleted = true
	list, total, err := h.Users.ListAdmins(r.Context(), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, "Admins are retrieved successfully", f, total, list)
}

func (h *UserHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	a, err := h.Users.GetAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Admin is retrieved successfully", a)
}

func (h *UserHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var patch service.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	a, err := h.Users.UpdateAdmin(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Admin is updated successfully", a)
}

func (h *UserHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.DeleteAdmin(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Admin is deleted successfully", nil)
}

// ListBuyers — админский список покупателей.
func (h *UserHandler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	f := parseListFilter(r)
	f.IncludeDeleted = true
	list, total, err := h.Users.ListBuyers(r.Context(), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, "Buyers are retrieved successfully", f, total, list)
}

func (h *UserHandler) GetBuyer(w http.ResponseWriter, r *http.Request) {
	b, err := h.Users.GetBuyer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Buyer is retrieved successfully", b)
}

func (h *UserHandler) UpdateBuyer(w http.ResponseWriter, r *http.Request) {
	var patch service.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	b, err := h.Users.UpdateBuyer(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Buyer is updated successfully", b)
}

func (h *UserHandler) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.DeleteBuyer(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Buyer is deleted successfully", nil)
}
