package domain

// CategorySearchQuery — параметры листинга категорий. Ядро передаёт их шлюзу без обработки.
type CategorySearchQuery struct {
	Page      int
	PerPage   int
	Terms     string
	Sort      string
	Direction string
}

func NewCategorySearchQuery(page, perPage int, terms, sort, direction string) CategorySearchQuery {
	return CategorySearchQuery{
		Page:      page,
		PerPage:   perPage,
		Terms:     terms,
		Sort:      sort,
		Direction: direction,
	}
}
