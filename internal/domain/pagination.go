package domain

// Pagination описывает страницу результатов, которую возвращает шлюз.
type Pagination[T any] struct {
	CurrentPage int
	PerPage     int
	Total       int64
	Items       []T
}

func NewPagination[T any](currentPage, perPage int, total int64, items []T) *Pagination[T] {
	return &Pagination[T]{
		CurrentPage: currentPage,
		PerPage:     perPage,
		Total:       total,
		Items:       items,
	}
}

// MapPagination преобразует элементы страницы, сохраняя её метаданные.
func MapPagination[T, R any](p *Pagination[T], fn func(T) R) *Pagination[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}

	return NewPagination(p.CurrentPage, p.PerPage, p.Total, items)
}
