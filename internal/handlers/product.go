package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"SiteModels/internal/middleware"
	"SiteModels/internal/model"
	"SiteModels/internal/service"
)

// ProductHandler обслуживает каталог продуктов.
type ProductHandler struct {
	Products *service.ProductService
	Logger   *zap.SugaredLogger
}

// NewProductHandler создаёт хендлер каталога.
func NewProductHandler(products *service.ProductService, logger *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{Products: products, Logger: logger}
}

// productData — поле data формы создания/обновления продукта.
type productData struct {
	CodeNumber *string `json:"codeNumber"`
	Title      *string `json:"title"`
	Category   *string `json:"category"`
}

// Create принимает multipart с data + twoDFile + threeDFile.
// Оба вложения обязательны и проверяются по формату до сервиса.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data productData
	if err := parseMultipartData(r, &data, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	twoD, err := formFile(r, formFieldTwoD)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	threeD, err := formFile(r, formFieldThreeD)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validTwoDFile(twoD) {
		respondError(w, http.StatusBadRequest, "2D file is missing or has unsupported format",
			ErrorSource{Path: formFieldTwoD, Message: "png, jpeg or webp image is required"})
		return
	}
	if !validThreeDFile(threeD) {
		respondError(w, http.StatusBadRequest, "3D file is missing or has unsupported format",
			ErrorSource{Path: formFieldThreeD, Message: "glb or gltf model is required"})
		return
	}

	in := service.CreateProductInput{TwoD: twoD, ThreeD: threeD}
	if data.CodeNumber != nil {
		in.CodeNumber = *data.CodeNumber
	}
	if data.Title != nil {
		in.Title = *data.Title
	}
	if data.Category != nil {
		in.Category = *data.Category
	}

	p, err := h.Products.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondCreated(w, "Product is created successfully", p)
}

// List — публичный листинг. Аутентифицированный админ видит и мягко
// удалённые записи.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	f := parseListFilter(r)
	if claims, ok := middleware.GetClaimsFromContext(r.Context()); ok && model.IsPrivileged(claims.Role) {
		f.IncludeDeleted = true
	}

	list, total, err := h.Products.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, "Products are retrieved successfully", f, total, list)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Product is retrieved successfully", p)
}

// Update — multipart‑патч: метаданные и файлы опциональны по отдельности.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var data productData
	if err := parseMultipartData(r, &data, false); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	twoD, err := formFile(r, formFieldTwoD)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	threeD, err := formFile(r, formFieldThreeD)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if twoD != nil && !validTwoDFile(twoD) {
		respondError(w, http.StatusBadRequest, "2D file has unsupported format",
			ErrorSource{Path: formFieldTwoD, Message: "png, jpeg or webp image is required"})
		return
	}
	if threeD != nil && !validThreeDFile(threeD) {
		respondError(w, http.StatusBadRequest, "3D file has unsupported format",
			ErrorSource{Path: formFieldThreeD, Message: "glb or gltf model is required"})
		return
	}

	patch := service.ProductPatch{
		CodeNumber: data.CodeNumber,
		Title:      data.Title,
		Category:   data.Category,
		TwoD:       twoD,
		ThreeD:     threeD,
	}
	p, err := h.Products.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Product is updated successfully", p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, "Product is deleted successfully", nil)
}

// Export отдаёт каталог xlsx‑файлом.
func (h *ProductHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.Products.Export(r.Context())
	if err != nil {
		h.Logger.Errorw("export failed", "error", err)
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
