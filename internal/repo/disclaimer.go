package repo

import (
	"context"

	"gorm.io/gorm"

	"SiteModels/internal/model"
)

// DisclaimerRepository — контракт доступа к дисклеймерам.
type DisclaimerRepository interface {
	Create(ctx context.Context, d *model.Disclaimer) error
	GetByID(ctx context.Context, id string) (*model.Disclaimer, error)
	List(ctx context.Context, f ListFilter) ([]model.Disclaimer, int64, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Disclaimer, error)
	SoftDelete(ctx context.Context, id string) error
}

type disclaimerRepo struct {
	db *gorm.DB
}

// NewDisclaimerRepository создаёт реализацию репозитория для Disclaimer.
func NewDisclaimerRepository(db *gorm.DB) DisclaimerRepository {
	return &disclaimerRepo{db: db}
}

func (r *disclaimerRepo) Create(ctx context.Context, d *model.Disclaimer) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *disclaimerRepo) GetByID(ctx context.Context, id string) (*model.Disclaimer, error) {
	var d model.Disclaimer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disclaimerRepo) List(ctx context.Context, f ListFilter) ([]model.Disclaimer, int64, error) {
	f = f.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Disclaimer{})
	if !f.IncludeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Disclaimer
	err := q.Order("created_at DESC").
		Offset(f.Offset()).Limit(f.Limit).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *disclaimerRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Disclaimer, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Disclaimer{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *disclaimerRepo) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&model.Disclaimer{}).Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
