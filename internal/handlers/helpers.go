package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"SiteModels/internal/repo"
	"SiteModels/internal/service"
)

// Канонические имена полей multipart‑формы. Контракт разбирается
// только здесь, хендлеры работают с готовыми структурами.
const (
	formFieldData   = "data"
	formFieldFile   = "file"
	formFieldTwoD   = "twoDFile"
	formFieldThreeD = "threeDFile"

	maxUploadBytes = 64 << 20
)

// parseMultipartData разбирает JSON из поля data в dest.
// required=false допускает форму без data (PATCH только с файлами).
func parseMultipartData(r *http.Request, dest any, required bool) error {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return fmt.Errorf("invalid multipart form: %w", err)
	}
	raw := r.FormValue(formFieldData)
	if raw == "" {
		if required {
			return fmt.Errorf("missing %q field", formFieldData)
		}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("invalid %q JSON: %w", formFieldData, err)
	}
	return nil
}

// formFile читает файл формы в FileUpload. Отсутствие поля — не ошибка,
// вернётся nil.
func formFile(r *http.Request, field string) (*service.FileUpload, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", field, err)
	}
	return &service.FileUpload{
		Name:        filepath.Base(hdr.Filename),
		ContentType: fileContentType(hdr),
		Data:        data,
	}, nil
}

func fileContentType(hdr *multipart.FileHeader) string {
	if ct := hdr.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Допустимые форматы вложений: 2D — растровые чертежи, 3D — glTF.
var (
	twoDContentTypes = map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/webp": true,
	}
	threeDExtensions = map[string]bool{
		".glb":  true,
		".gltf": true,
	}
)

func validTwoDFile(f *service.FileUpload) bool {
	return f != nil && twoDContentTypes[strings.ToLower(f.ContentType)]
}

func validThreeDFile(f *service.FileUpload) bool {
	return f != nil && threeDExtensions[strings.ToLower(filepath.Ext(f.Name))]
}

// parseListFilter читает пагинацию и фильтры из query‑строки.
func parseListFilter(r *http.Request) repo.ListFilter {
	q := r.URL.Query()
	f := repo.ListFilter{
		Category:   q.Get("category"),
		CodeNumber: q.Get("codeNumber"),
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		f.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		f.Limit = v
	}
	return f.Normalize()
}
