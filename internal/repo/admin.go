package repo

import (
	"context"

	"gorm.io/gorm"

	"SiteModels/internal/model"
)

// AdminRepository — контракт доступа к профилям администраторов.
type AdminRepository interface {
	// CreateWithUser создаёт учётную запись и профиль одной транзакцией.
	CreateWithUser(ctx context.Context, user *model.User, admin *model.Admin) error

	GetByID(ctx context.Context, id string) (*model.Admin, error)
	GetByUserID(ctx context.Context, userID string) (*model.Admin, error)
	List(ctx context.Context, f ListFilter) ([]model.Admin, int64, error)

	// Update применяет частичный патч и возвращает обновлённый профиль.
	Update(ctx context.Context, id string, updates map[string]any) (*model.Admin, error)

	// SoftDelete помечает профиль и учётную запись удалёнными.
	SoftDelete(ctx context.Context, id string) error
}

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepository создаёт реализацию репозитория для Admin.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) CreateWithUser(ctx context.Context, user *model.User, admin *model.Admin) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		admin.UserID = user.ID
		return tx.Create(admin).Error
	})
}

func (r *adminRepo) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) GetByUserID(ctx context.Context, userID string) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) List(ctx context.Context, f ListFilter) ([]model.Admin, int64, error) {
	f = f.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Admin{})
	if !f.IncludeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Admin
	err := q.Preload("User").
		Order("created_at DESC").
		Offset(f.Offset()).Limit(f.Limit).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *adminRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Admin, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Admin{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *adminRepo) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a model.Admin
		if err := tx.Where("id = ?", id).First(&a).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Admin{}).Where("id = ?", id).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", a.UserID).
			Update("is_deleted", true).Error
	})
}
