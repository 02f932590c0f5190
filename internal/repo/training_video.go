package repo

import (
	"context"

	"gorm.io/gorm"

	"SiteModels/internal/model"
)

// TrainingVideoRepository — контракт доступа к обучающим видео.
type TrainingVideoRepository interface {
	Create(ctx context.Context, v *model.TrainingVideo) error
	GetByID(ctx context.Context, id string) (*model.TrainingVideo, error)
	List(ctx context.Context, f ListFilter) ([]model.TrainingVideo, int64, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.TrainingVideo, error)
	SoftDelete(ctx context.Context, id string) error
}

type trainingVideoRepo struct {
	db *gorm.DB
}

// NewTrainingVideoRepository создаёт реализацию репозитория для TrainingVideo.
func NewTrainingVideoRepository(db *gorm.DB) TrainingVideoRepository {
	return &trainingVideoRepo{db: db}
}

func (r *trainingVideoRepo) Create(ctx context.Context, v *model.TrainingVideo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *trainingVideoRepo) GetByID(ctx context.Context, id string) (*model.TrainingVideo, error) {
	var v model.TrainingVideo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *trainingVideoRepo) List(ctx context.Context, f ListFilter) ([]model.TrainingVideo, int64, error) {
	f = f.Normalize()
	q := r.db.WithContext(ctx).Model(&model.TrainingVideo{})
	if !f.IncludeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.TrainingVideo
	err := q.Order("created_at DESC").
		Offset(f.Offset()).Limit(f.Limit).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *trainingVideoRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.TrainingVideo, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.TrainingVideo{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *trainingVideoRepo) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&model.TrainingVideo{}).Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
