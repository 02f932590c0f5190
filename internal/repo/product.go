package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"SiteModels/internal/model"
)

// ProductRepository — контракт доступа к продуктам.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByCode(ctx context.Context, code string) (*model.Product, error)

	// List применяет фильтры Category/CodeNumber; поиск по codeNumber —
	// регистронезависимый префиксный.
	List(ctx context.Context, f ListFilter) ([]model.Product, int64, error)

	Update(ctx context.Context, id string, updates map[string]any) (*model.Product, error)
	SoftDelete(ctx context.Context, id string) error
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository создаёт реализацию репозитория для Product.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("code_number = ?", strings.ToUpper(code)).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, f ListFilter) ([]model.Product, int64, error) {
	f = f.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Product{})
	if !f.IncludeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.CodeNumber != "" {
		// codeNumber хранится в верхнем регистре, поэтому префикс достаточно
		// привести к нему же.
		q = q.Where("code_number LIKE ?", strings.ToUpper(f.CodeNumber)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Product
	err := q.Order("created_at DESC").
		Offset(f.Offset()).Limit(f.Limit).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *productRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Product, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *productRepo) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
