package service

import (
	"context"
	"fmt"
	"strings"

	"SiteModels/internal/cache"
	"SiteModels/internal/model"
	"SiteModels/internal/repo"
)

// ProfilePatch — частичное обновление профиля. nil‑поле означает
// "не трогать"; переданное имя пересобирает fullName на сервере.
type ProfilePatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// listCacheKey сериализует фильтр в ключ кэша.
func listCacheKey(f repo.ListFilter) string {
	f = f.Normalize()
	return fmt.Sprintf("page=%d&limit=%d&category=%s&code=%s&deleted=%t",
		f.Page, f.Limit, f.Category, strings.ToUpper(f.CodeNumber), f.IncludeDeleted)
}

// cachedPage — закэшированная страница списка.
type cachedPage[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// listThrough возвращает страницу из кэша или из repo с прогревом кэша.
func listThrough[T any](ctx context.Context, c *cache.ListCache, tag string, f repo.ListFilter,
	fetch func(context.Context, repo.ListFilter) ([]T, int64, error)) ([]T, int64, error) {

	key := listCacheKey(f)
	var page cachedPage[T]
	if c.Get(ctx, tag, key, &page) {
		return page.Items, page.Total, nil
	}
	items, total, err := fetch(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	c.Set(ctx, tag, key, cachedPage[T]{Items: items, Total: total})
	return items, total, nil
}

// ListAdmins — админский список профилей (включая мягко удалённые).
func (s *UserService) ListAdmins(ctx context.Context, f repo.ListFilter) ([]model.Admin, int64, error) {
	return listThrough(ctx, s.cache, cache.TagAdmin, f, s.admins.List)
}

// GetAdmin возвращает профиль администратора.
func (s *UserService) GetAdmin(ctx context.Context, id string) (*model.Admin, error) {
	return s.admins.GetByID(ctx, id)
}

// UpdateAdmin применяет частичный патч; неизменённые поля не пишутся.
func (s *UserService) UpdateAdmin(ctx context.Context, id string, patch ProfilePatch) (*model.Admin, error) {
	cur, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := profileUpdates(cur.Name, patch)
	a, err := s.admins.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TagAdmin, cache.TagUser)
	return a, nil
}

// DeleteAdmin мягко удаляет профиль и связанную учётную запись.
func (s *UserService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.admins.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TagAdmin, cache.TagUser)
	return nil
}

// ListBuyers — админский список покупателей.
func (s *UserService) ListBuyers(ctx context.Context, f repo.ListFilter) ([]model.Buyer, int64, error) {
	return listThrough(ctx, s.cache, cache.TagBuyer, f, s.buyers.List)
}

// GetBuyer возвращает профиль покупателя.
func (s *UserService) GetBuyer(ctx context.Context, id string) (*model.Buyer, error) {
	return s.buyers.GetByID(ctx, id)
}

// UpdateBuyer применяет частичный патч к профилю покупателя.
func (s *UserService) UpdateBuyer(ctx context.Context, id string, patch ProfilePatch) (*model.Buyer, error) {
	cur, err := s.buyers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := profileUpdates(cur.Name, patch)
	if patch.Address != nil && *patch.Address != cur.Address {
		updates["address"] = *patch.Address
	}
	b, err := s.buyers.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TagBuyer, cache.TagUser)
	return b, nil
}

// DeleteBuyer мягко удаляет профиль и связанную учётную запись.
func (s *UserService) DeleteBuyer(ctx context.Context, id string) error {
	if err := s.buyers.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TagBuyer, cache.TagUser)
	return nil
}

// profileUpdates собирает патч имени: новое имя мержится с текущим,
// fullName пересчитывается только если имя реально поменялось.
func profileUpdates(cur model.PersonName, patch ProfilePatch) map[string]any {
	updates := map[string]any{}
	name := cur
	if patch.FirstName != nil && *patch.FirstName != cur.FirstName {
		name.FirstName = *patch.FirstName
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil && *patch.LastName != cur.LastName {
		name.LastName = *patch.LastName
		updates["last_name"] = *patch.LastName
	}
	if name != cur {
		updates["full_name"] = name.FullName()
	}
	return updates
}
