package repo

// DefaultPageLimit — размер страницы по умолчанию для всех списков.
const DefaultPageLimit = 10

// maxPageLimit ограничивает limit сверху, чтобы клиент не выгреб всю таблицу.
const maxPageLimit = 100

// ListFilter — общий фильтр списочных операций. Нулевое значение валидно:
// Normalize приводит его к {page:1, limit:DefaultPageLimit}.
type ListFilter struct {
	Page  int
	Limit int

	// Продуктовые фильтры; для остальных ресурсов игнорируются.
	Category   string
	CodeNumber string

	// IncludeDeleted включает мягко удалённые записи (админские списки).
	// Публичные выборки всегда работают без них.
	IncludeDeleted bool
}

// Normalize возвращает фильтр с валидными page/limit.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}
	return f
}

// Offset вычисляет смещение для страницы.
func (f ListFilter) Offset() int {
	n := f.Normalize()
	return (n.Page - 1) * n.Limit
}
