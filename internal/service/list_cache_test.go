package service_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"SiteModels/internal/cache"
	"SiteModels/internal/model"
	"SiteModels/internal/repo"
	"SiteModels/internal/service"
)

func newListCache(t *testing.T) *cache.ListCache {
	t.Helper()
	srv := miniredis.RunT(t)
	c, err := cache.New(srv.Addr(), "", 0, zap.NewNop().Sugar())
	assert.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// Тест: повторная выборка той же страницы не трогает репозиторий
func TestProductService_ListThroughCache(t *testing.T) {
	ctx := context.Background()
	lc := newListCache(t)

	products := new(mockProductRepo)
	catalog := []model.Product{
		{ID: "p1", CodeNumber: "FR-101", Title: "Framing bracket", Category: model.CategoryFraming},
		{ID: "p2", CodeNumber: "RF-202", Title: "Roof truss", Category: model.CategoryDrainage},
	}
	f := repo.ListFilter{Page: 1, Limit: 10}
	products.On("List", mock.Anything, f).Return(catalog, int64(2), nil).Once()

	svc := service.NewProductService(products, newFakeStore(), lc, zap.NewNop().Sugar())

	items, total, err := svc.List(ctx, f)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	// второй запрос обслуживается из кэша, List на repo не вызывается
	items, total, err = svc.List(ctx, f)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "FR-101", items[0].CodeNumber)
	products.AssertExpectations(t)
}

// Тест: мутация продукта сбрасывает и продуктовый, и пользовательский теги
func TestProductService_DeleteDropsUserTag(t *testing.T) {
	ctx := context.Background()
	lc := newListCache(t)

	products := new(mockProductRepo)
	f := repo.ListFilter{Page: 1, Limit: 10}
	products.On("List", mock.Anything, f).Return([]model.Product{{ID: "p1"}}, int64(1), nil).Twice()
	products.On("SoftDelete", mock.Anything, "p1").Return(nil).Once()

	svc := service.NewProductService(products, newFakeStore(), lc, zap.NewNop().Sugar())

	// прогрев: страница каталога в кэше, рядом запись профильного тега
	_, _, err := svc.List(ctx, f)
	assert.NoError(t, err)
	type profile struct {
		Name string `json:"name"`
	}
	lc.Set(ctx, cache.TagUser, "me", profile{Name: "buyer"})
	lc.Set(ctx, cache.TagDisclaimer, "page=1", profile{Name: "keep"})

	assert.NoError(t, svc.Delete(ctx, "p1"))

	// профильная запись удалена вместе со страницами каталога
	var got profile
	assert.False(t, lc.Get(ctx, cache.TagUser, "me", &got))
	// чужой тег не затронут
	assert.True(t, lc.Get(ctx, cache.TagDisclaimer, "page=1", &got))

	// каталог снова идёт в репозиторий
	_, _, err = svc.List(ctx, f)
	assert.NoError(t, err)
	products.AssertExpectations(t)
}
