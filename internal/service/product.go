package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"SiteModels/internal/cache"
	"SiteModels/internal/model"
	"SiteModels/internal/repo"
	"SiteModels/internal/storage"
)

// ProductService реализует каталог моделей: CRUD, поиск по коду,
// экспорт и выгрузку чертежей в объектное хранилище.
type ProductService struct {
	products repo.ProductRepository
	store    storage.BlobStore
	cache    *cache.ListCache
	logger   *zap.SugaredLogger
}

// NewProductService создаёт сервис каталога.
func NewProductService(products repo.ProductRepository, store storage.BlobStore, c *cache.ListCache, logger *zap.SugaredLogger) *ProductService {
	return &ProductService{products: products, store: store, cache: c, logger: logger}
}

// CreateProductInput — форма создания продукта. Оба файла обязательны.
type CreateProductInput struct {
	CodeNumber string
	Title      string
	Category   string
	TwoD       *FileUpload
	ThreeD     *FileUpload
}

func (in CreateProductInput) validate() error {
	if strings.TrimSpace(in.CodeNumber) == "" {
		return fmt.Errorf("%w: codeNumber is required", ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !model.ValidCategory(in.Category) {
		return ErrInvalidCategory
	}
	if in.TwoD == nil || in.ThreeD == nil {
		return fmt.Errorf("%w: both 2D and 3D files are required", ErrValidation)
	}
	return nil
}

// Create нормализует код (верхний регистр), грузит файлы и миниатюру
// 2D‑чертежа, пишет запись и сбрасывает списочные кэши.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(in.CodeNumber))
	if _, err := s.products.GetByCode(ctx, code); err == nil {
		return nil, fmt.Errorf("%w: codeNumber %s already exists", ErrValidation, code)
	}

	id := uuid.New().String()
	twoDURL, err := s.store.Save(ctx, "products/"+id+"/2d/"+in.TwoD.Name, in.TwoD.ContentType, in.TwoD.Data)
	if err != nil {
		return nil, fmt.Errorf("upload 2d: %w", err)
	}
	threeDURL, err := s.store.Save(ctx, "products/"+id+"/3d/"+in.ThreeD.Name, in.ThreeD.ContentType, in.ThreeD.Data)
	if err != nil {
		return nil, fmt.Errorf("upload 3d: %w", err)
	}

	p := &model.Product{
		ID:         id,
		CodeNumber: code,
		Title:      strings.TrimSpace(in.Title),
		Category:   in.Category,
		TwoDURL:    twoDURL,
		ThreeDURL:  threeDURL,
	}
	p.TwoDThumbURL = s.uploadThumb(ctx, id, in.TwoD.Data)

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TagProduct, cache.TagUser)
	return p, nil
}

// uploadThumb строит миниатюру 2D‑чертежа. Ошибка не фатальна:
// карточка остаётся без превью.
func (s *ProductService) uploadThumb(ctx context.Context, id string, data []byte) string {
	thumb, err := storage.Thumbnail(data)
	if err != nil {
		s.logger.Warnw("thumbnail skipped", "product", id, "error", err)
		return ""
	}
	url, err := s.store.Save(ctx, "products/"+id+"/2d/thumb.jpg", "image/jpeg", thumb)
	if err != nil {
		s.logger.Warnw("thumbnail upload failed", "product", id, "error", err)
		return ""
	}
	return url
}

// List возвращает страницу каталога сквозь кэш списков.
func (s *ProductService) List(ctx context.Context, f repo.ListFilter) ([]model.Product, int64, error) {
	return listThrough(ctx, s.cache, cache.TagProduct, f, s.products.List)
}

// Get возвращает продукт по id.
func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ProductPatch — частичное обновление; файлы перезаписывают ссылки.
type ProductPatch struct {
	CodeNumber *string
	Title      *string
	Category   *string
	TwoD       *FileUpload
	ThreeD     *FileUpload
}

// Update применяет патч. Код снова нормализуется, новый 2D‑файл
// перестраивает миниатюру.
func (s *ProductService) Update(ctx context.Context, id string, patch ProductPatch) (*model.Product, error) {
	updates := map[string]any{}
	if patch.CodeNumber != nil {
		updates["code_number"] = strings.ToUpper(strings.TrimSpace(*patch.CodeNumber))
	}
	if patch.Title != nil {
		updates["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Category != nil {
		if !model.ValidCategory(*patch.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *patch.Category
	}
	if patch.TwoD != nil {
		url, err := s.store.Save(ctx, "products/"+id+"/2d/"+patch.TwoD.Name, patch.TwoD.ContentType, patch.TwoD.Data)
		if err != nil {
			return nil, fmt.Errorf("upload 2d: %w", err)
		}
		updates["two_d_url"] = url
		updates["two_d_thumb_url"] = s.uploadThumb(ctx, id, patch.TwoD.Data)
	}
	if patch.ThreeD != nil {
		url, err := s.store.Save(ctx, "products/"+id+"/3d/"+patch.ThreeD.Name, patch.ThreeD.ContentType, patch.ThreeD.Data)
		if err != nil {
			return nil, fmt.Errorf("upload 3d: %w", err)
		}
		updates["three_d_url"] = url
	}

	p, err := s.products.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TagProduct, cache.TagUser)
	return p, nil
}

// Delete мягко удаляет продукт и сбрасывает кэши.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TagProduct, cache.TagUser)
	return nil
}

// Export собирает xlsx со всеми неудалёнными продуктами.
func (s *ProductService) Export(ctx context.Context) ([]byte, error) {
	const sheet = "Products"
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Code Number", "Title", "Category", "2D URL", "3D URL", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	filter := repo.ListFilter{Limit: 100}
	for page := 1; ; page++ {
		filter.Page = page
		items, total, err := s.products.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, p := range items {
			values := []any{p.CodeNumber, p.Title, p.Category, p.TwoDURL, p.ThreeDURL, p.CreatedAt.Format("2006-01-02 15:04")}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
		if int64(page*filter.Limit) >= total || len(items) == 0 {
			break
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
