package repo

import (
	"context"

	"gorm.io/gorm"

	"SiteModels/internal/model"
)

// BuyerRepository — контракт доступа к профилям покупателей.
// Зеркален AdminRepository: профили различаются только полем Address.
type BuyerRepository interface {
	CreateWithUser(ctx context.Context, user *model.User, buyer *model.Buyer) error

	GetByID(ctx context.Context, id string) (*model.Buyer, error)
	GetByUserID(ctx context.Context, userID string) (*model.Buyer, error)
	List(ctx context.Context, f ListFilter) ([]model.Buyer, int64, error)

	Update(ctx context.Context, id string, updates map[string]any) (*model.Buyer, error)
	SoftDelete(ctx context.Context, id string) error
}

type buyerRepo struct {
	db *gorm.DB
}

// NewBuyerRepository создаёт реализацию репозитория для Buyer.
func NewBuyerRepository(db *gorm.DB) BuyerRepository {
	return &buyerRepo{db: db}
}

func (r *buyerRepo) CreateWithUser(ctx context.Context, user *model.User, buyer *model.Buyer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		buyer.UserID = user.ID
		return tx.Create(buyer).Error
	})
}

func (r *buyerRepo) GetByID(ctx context.Context, id string) (*model.Buyer, error) {
	var b model.Buyer
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *buyerRepo) GetByUserID(ctx context.Context, userID string) (*model.Buyer, error) {
	var b model.Buyer
	if err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *buyerRepo) List(ctx context.Context, f ListFilter) ([]model.Buyer, int64, error) {
	f = f.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Buyer{})
	if !f.IncludeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Buyer
	err := q.Preload("User").
		Order("created_at DESC").
		Offset(f.Offset()).Limit(f.Limit).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *buyerRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Buyer, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Buyer{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *buyerRepo) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b model.Buyer
		if err := tx.Where("id = ?", id).First(&b).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Buyer{}).Where("id = ?", id).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", b.UserID).
			Update("is_deleted", true).Error
	})
}
