package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
)

const (
	DefaultPage      = 1
	DefaultPerPage   = 10
	MaxPerPage       = 100
	DefaultSort      = "name"
	DefaultDirection = "asc"
)

// sortFields — допустимые поля сортировки и их имена в хранилище.
var sortFields = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"createdAt":  "created_at",
	"updated_at": "updated_at",
	"updatedAt":  "updated_at",
}

type ListCategoriesUseCase struct {
	gateway CategoryGateway
}

func NewListCategoriesUC(gateway CategoryGateway) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{gateway: gateway}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query domain.CategorySearchQuery) (*domain.Pagination[CategoryListOutput], error) {
	const op = "ListCategoriesUseCase.Execute"

	page, err := uc.gateway.FindAll(ctx, NormalizeSearchQuery(query))
	if err != nil {
		if isContextError(err) {
			return nil, e.Wrap(op, err)
		}

		return nil, domain.NewInfrastructureError(e.Wrap(op, err))
	}

	return domain.MapPagination(page, NewCategoryListOutput), nil
}

// NormalizeSearchQuery приводит параметры листинга к допустимым значениям.
func NormalizeSearchQuery(query domain.CategorySearchQuery) domain.CategorySearchQuery {
	if query.Page < 1 {
		query.Page = DefaultPage
	}

	switch {
	case query.PerPage <= 0:
		query.PerPage = DefaultPerPage
	case query.PerPage > MaxPerPage:
		query.PerPage = MaxPerPage
	}

	// смещение (page-1)*perPage должно помещаться в int
	if maxPage := math.MaxInt / query.PerPage; query.Page > maxPage {
		query.Page = maxPage
	}

	query.Terms = strings.TrimSpace(query.Terms)

	if field, ok := sortFields[strings.TrimSpace(query.Sort)]; ok {
		query.Sort = field
	} else {
		query.Sort = DefaultSort
	}

	switch strings.ToLower(strings.TrimSpace(query.Direction)) {
	case "desc":
		query.Direction = "desc"
	default:
		query.Direction = DefaultDirection
	}

	return query
}
