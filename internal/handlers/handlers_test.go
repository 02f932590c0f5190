package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"SiteModels/internal/config"
	"SiteModels/internal/handlers"
	"SiteModels/internal/middleware"
	"SiteModels/internal/model"
	"SiteModels/internal/repo"
	"SiteModels/internal/service"
)

// Minimal mocks

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

type mockDisclaimerRepo struct{ mock.Mock }

func (m *mockDisclaimerRepo) Create(ctx context.Context, d *model.Disclaimer) error {
	return m.Called(ctx, d).Error(0)
}
func (m *mockDisclaimerRepo) GetByID(ctx context.Context, id string) (*model.Disclaimer, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Disclaimer); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDisclaimerRepo) List(ctx context.Context, f repo.ListFilter) ([]model.Disclaimer, int64, error) {
	args := m.Called(ctx, f)
	var list []model.Disclaimer
	if v, ok := args.Get(0).([]model.Disclaimer); ok {
		list = v
	}
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *mockDisclaimerRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Disclaimer, error) {
	args := m.Called(ctx, id, updates)
	if d, ok := args.Get(0).(*model.Disclaimer); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDisclaimerRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.DisclaimerRepository = (*mockDisclaimerRepo)(nil)

type mockVideoRepo struct{ mock.Mock }

func (m *mockVideoRepo) Create(ctx context.Context, v *model.TrainingVideo) error {
	return m.Called(ctx, v).Error(0)
}
func (m *mockVideoRepo) GetByID(ctx context.Context, id string) (*model.TrainingVideo, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.TrainingVideo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockVideoRepo) List(ctx context.Context, f repo.ListFilter) ([]model.TrainingVideo, int64, error) {
	args := m.Called(ctx, f)
	var list []model.TrainingVideo
	if v, ok := args.Get(0).([]model.TrainingVideo); ok {
		list = v
	}
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *mockVideoRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.TrainingVideo, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.TrainingVideo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockVideoRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.TrainingVideoRepository = (*mockVideoRepo)(nil)

// fakeStore — BlobStore без сети.
type fakeStore struct{}

func (fakeStore) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	return "https://cdn.test/" + key, nil
}

// testEnv собирает роутер поверх моков репозиториев.
type testEnv struct {
	router   http.Handler
	cfg      *config.Config
	users    *mockUserRepo
	admins   *mockAdminRepo
	buyers   *mockBuyerRepo
	products *mockProductRepo
	disc     *mockDisclaimerRepo
	videos   *mockVideoRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", AccessTokenTTLMin: 60, RefreshTokenTTLHrs: 720}
	logger := zap.NewNop().Sugar()

	env := &testEnv{
		cfg:      cfg,
		users:    &mockUserRepo{},
		admins:   &mockAdminRepo{},
		buyers:   &mockBuyerRepo{},
		products: &mockProductRepo{},
		disc:     &mockDisclaimerRepo{},
		videos:   &mockVideoRepo{},
	}

	authSvc := service.NewAuthService(env.users, cfg.AuthSecret, time.Hour, 24*time.Hour, logger)
	userSvc := service.NewUserService(env.users, env.admins, env.buyers, fakeStore{}, nil, logger)
	productSvc := service.NewProductService(env.products, fakeStore{}, nil, logger)
	discSvc := service.NewDisclaimerService(env.disc, nil, logger)
	videoSvc := service.NewTrainingVideoService(env.videos, nil, logger)

	h := handlers.NewHandler(authSvc, userSvc, productSvc, discSvc, videoSvc, logger, cfg)
	env.router = h.Router
	return env
}

// addAuth подписывает access-токен указанной роли и ставит его в Bearer.
func addAuth(t *testing.T, req *http.Request, role, secret string) {
	t.Helper()
	u := &model.User{ID: "u1", Email: "user@example.com", Role: role}
	token, err := middleware.BuildToken(u, secret, time.Hour)
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func do(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}
