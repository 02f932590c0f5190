package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"SiteModels/internal/model"
	"SiteModels/internal/repo"
	"SiteModels/internal/storage"
)

// Общие моки репозиториев для тестов сервисного слоя.

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) CreateWithUser(ctx context.Context, user *model.User, admin *model.Admin) error {
	return m.Called(ctx, user, admin).Error(0)
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*model.Admin); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepo) GetByUserID(ctx context.Context, userID string) (*model.Admin, error) {
	args := m.Called(ctx, userID)
	if a, ok := args.Get(0).(*model.Admin); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepo) List(ctx context.Context, f repo.ListFilter) ([]model.Admin, int64, error) {
	args := m.Called(ctx, f)
	var list []model.Admin
	if v, ok := args.Get(0).([]model.Admin); ok {
		list = v
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockAdminRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Admin, error) {
	args := m.Called(ctx, id, updates)
	if a, ok := args.Get(0).(*model.Admin); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.AdminRepository = (*mockAdminRepo)(nil)

type mockBuyerRepo struct{ mock.Mock }

func (m *mockBuyerRepo) CreateWithUser(ctx context.Context, user *model.User, buyer *model.Buyer) error {
	return m.Called(ctx, user, buyer).Error(0)
}

func (m *mockBuyerRepo) GetByID(ctx context.Context, id string) (*model.Buyer, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*model.Buyer); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuyerRepo) GetByUserID(ctx context.Context, userID string) (*model.Buyer, error) {
	args := m.Called(ctx, userID)
	if b, ok := args.Get(0).(*model.Buyer); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuyerRepo) List(ctx context.Context, f repo.ListFilter) ([]model.Buyer, int64, error) {
	args := m.Called(ctx, f)
	var list []model.Buyer
	if v, ok := args.Get(0).([]model.Buyer); ok {
		list = v
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockBuyerRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Buyer, error) {
	args := m.Called(ctx, id, updates)
	if b, ok := args.Get(0).(*model.Buyer); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuyerRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.BuyerRepository = (*mockBuyerRepo)(nil)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	args := m.Called(ctx, code)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, f repo.ListFilter) ([]model.Product, int64, error) {
	args := m.Called(ctx, f)
	var list []model.Product
	if v, ok := args.Get(0).([]model.Product); ok {
		list = v
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Product, error) {
	args := m.Called(ctx, id, updates)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ProductRepository = (*mockProductRepo)(nil)

// fakeStore пишет "в никуда" и возвращает детерминированный URL.
type fakeStore struct {
	saved map[string][]byte
}

func newFakeStore() *fakeStore { return &fakeStore{saved: map[string][]byte{}} }

func (s *fakeStore) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	s.saved[key] = data
	return "https://cdn.test/" + key, nil
}

var _ storage.BlobStore = (*fakeStore)(nil)
