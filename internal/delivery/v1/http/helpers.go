package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/jimlawless/whereami"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Errors  []domain.ErrorMessage `json:"errors,omitempty"`
}

// CategoryRequest — тело POST и PUT. Отсутствующий is_active считается true.
type CategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type CategoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

type CategoryListItemResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

type CategoryListResponse struct {
	CurrentPage int                        `json:"current_page"`
	PerPage     int                        `json:"per_page"`
	Total       int64                      `json:"total"`
	Items       []CategoryListItemResponse `json:"items"`
}

func NewErrorResponse(code int, message string, errs ...domain.ErrorMessage) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  errs,
	}
}

// ToHTTPResponse сопоставляет ошибку со статусом и телом ответа.
func ToHTTPResponse(err error) *ErrorResponse {
	if domainErr, ok := domain.AsError(err); ok {
		switch domainErr.Kind {
		case domain.KindValidation:
			return NewErrorResponse(http.StatusUnprocessableEntity, firstMessage(domainErr.Errors), domainErr.Errors...)
		case domain.KindNotFound:
			return NewErrorResponse(http.StatusNotFound, domainErr.Error())
		}
	}

	switch {
	case errors.Is(err, e.ErrInvalidJSON):
		return NewErrorResponse(http.StatusBadRequest, e.ErrInvalidJSON.Error())
	case errors.Is(err, e.ErrInvalidQuery):
		return NewErrorResponse(http.StatusBadRequest, e.ErrInvalidQuery.Error())
	case errors.Is(err, e.ErrStatusBadRequest):
		return NewErrorResponse(http.StatusBadRequest, e.ErrStatusBadRequest.Error())
	default:
		return NewErrorResponse(http.StatusInternalServerError, e.ErrInternalServerError.Error())
	}
}

// NotificationResponse — ответ 422 на Result с ошибками валидации.
func NotificationResponse(n *domain.Notification) *ErrorResponse {
	return NewErrorResponse(http.StatusUnprocessableEntity, n.FirstError(), n.Errors()...)
}

func firstMessage(errs []domain.ErrorMessage) string {
	if len(errs) == 0 {
		return ""
	}

	return errs[0].Message
}

func WriteError(w http.ResponseWriter, resp *ErrorResponse) {
	WriteSuccess(w, resp.Code, resp)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeCategoryRequest(w http.ResponseWriter, r *http.Request) (*CategoryRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req CategoryRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrInvalidJSON, err))
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidJSON)
	}

	return &req, nil
}

func (r *CategoryRequest) isActive() bool {
	return r.IsActive == nil || *r.IsActive
}

func parseSearchQuery(r *http.Request) (domain.CategorySearchQuery, error) {
	q := r.URL.Query()

	page, err := parseIntParam(q.Get("page"), usecase.DefaultPage)
	if err != nil {
		return domain.CategorySearchQuery{}, e.Wrap("page", err)
	}

	perPage, err := parseIntParam(q.Get("perPage"), usecase.DefaultPerPage)
	if err != nil {
		return domain.CategorySearchQuery{}, e.Wrap("perPage", err)
	}

	return domain.NewCategorySearchQuery(page, perPage, q.Get("search"), q.Get("sort"), q.Get("dir")), nil
}

func parseIntParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.ErrInvalidQuery
	}

	return v, nil
}

func toCategoryResponse(c *usecase.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

func toCategoryListResponse(p *domain.Pagination[usecase.CategoryListOutput]) *CategoryListResponse {
	items := make([]CategoryListItemResponse, 0, len(p.Items))
	for _, c := range p.Items {
		items = append(items, CategoryListItemResponse{
			ID:          c.ID.String(),
			Name:        c.Name,
			Description: c.Description,
			IsActive:    c.IsActive,
			CreatedAt:   c.CreatedAt,
			DeletedAt:   c.DeletedAt,
		})
	}

	return &CategoryListResponse{
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
		Items:       items,
	}
}
