package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"SiteModels/internal/cache"
	"SiteModels/internal/model"
	"SiteModels/internal/repo"
	"SiteModels/internal/storage"
)

// UserService — создание админов/покупателей и карточка "обо мне".
type UserService struct {
	users  repo.UserRepository
	admins repo.AdminRepository
	buyers repo.BuyerRepository
	store  storage.BlobStore
	cache  *cache.ListCache
	logger *zap.SugaredLogger
}

// NewUserService создаёт сервис пользователей.
func NewUserService(users repo.UserRepository, admins repo.AdminRepository, buyers repo.BuyerRepository, store storage.BlobStore, c *cache.ListCache, logger *zap.SugaredLogger) *UserService {
	return &UserService{users: users, admins: admins, buyers: buyers, store: store, cache: c, logger: logger}
}

// FileUpload — бинарное вложение из multipart‑формы.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// CreateProfileInput — вход create-admin/create-buyer. Имя принимается
// только структурированным; fullName собирает сервер.
type CreateProfileInput struct {
	Password   string
	Email      string
	Name       model.PersonName
	Address    string // только для buyer
	ProfileImg *FileUpload
}

func (in CreateProfileInput) validate() error {
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(in.Password) < 5 {
		return fmt.Errorf("%w: password must be at least 5 characters", ErrValidation)
	}
	if strings.TrimSpace(in.Name.FirstName) == "" || strings.TrimSpace(in.Name.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrValidation)
	}
	return nil
}

// newAccount готовит учётную запись с захэшированным паролем.
func newAccount(email, password, role string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hash),
		Role:     role,
		Status:   model.StatusActive,
	}, nil
}

// uploadProfileImg кладёт аватар в хранилище; отсутствие файла не ошибка.
func (s *UserService) uploadProfileImg(ctx context.Context, ownerID string, f *FileUpload) string {
	if f == nil || len(f.Data) == 0 {
		return ""
	}
	url, err := s.store.Save(ctx, "profiles/"+ownerID+"_"+f.Name, f.ContentType, f.Data)
	if err != nil {
		// аватар не критичен для создания профиля
		s.logger.Warnw("profile image upload failed", "owner", ownerID, "error", err)
		return ""
	}
	return url
}

// CreateAdmin создаёт учётную запись с ролью admin и её профиль.
func (s *UserService) CreateAdmin(ctx context.Context, in CreateProfileInput) (*model.Admin, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u, err := newAccount(in.Email, in.Password, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	a := &model.Admin{
		ID:         uuid.NewString(),
		Name:       in.Name,
		FullName:   in.Name.FullName(),
		Email:      in.Email,
		ProfileImg: s.uploadProfileImg(ctx, u.ID, in.ProfileImg),
	}
	if err := s.admins.CreateWithUser(ctx, u, a); err != nil {
		return nil, err
	}
	a.User = u
	s.cache.Invalidate(ctx, cache.TagAdmin, cache.TagUser)
	return a, nil
}

// CreateBuyer создаёт учётную запись с ролью buyer и её профиль.
func (s *UserService) CreateBuyer(ctx context.Context, in CreateProfileInput) (*model.Buyer, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u, err := newAccount(in.Email, in.Password, model.RoleBuyer)
	if err != nil {
		return nil, err
	}
	b := &model.Buyer{
		ID:         uuid.NewString(),
		Name:       in.Name,
		FullName:   in.Name.FullName(),
		Email:      in.Email,
		Address:    in.Address,
		ProfileImg: s.uploadProfileImg(ctx, u.ID, in.ProfileImg),
	}
	if err := s.buyers.CreateWithUser(ctx, u, b); err != nil {
		return nil, err
	}
	b.User = u
	s.cache.Invalidate(ctx, cache.TagBuyer, cache.TagUser)
	return b, nil
}

// Me возвращает учётную запись и профиль, соответствующий роли.
// Профиль может отсутствовать (например, для superAdmin) — это не ошибка.
func (s *UserService) Me(ctx context.Context, userID string) (map[string]any, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := map[string]any{"user": u}
	switch strings.ToLower(u.Role) {
	case strings.ToLower(model.RoleAdmin):
		if a, err := s.admins.GetByUserID(ctx, u.ID); err == nil {
			a.User = nil
			out["profile"] = a
		}
	case strings.ToLower(model.RoleBuyer):
		if b, err := s.buyers.GetByUserID(ctx, u.ID); err == nil {
			b.User = nil
			out["profile"] = b
		}
	}
	return out, nil
}
