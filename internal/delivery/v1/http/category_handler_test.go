package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryUCMock struct {
	mock.Mock
}

func (m *categoryUCMock) CreateCategory(ctx context.Context, cmd *usecase.CreateCategoryCommand) (usecase.Result[*usecase.CreateCategoryOutput], error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(usecase.Result[*usecase.CreateCategoryOutput]), args.Error(1)
}

func (m *categoryUCMock) UpdateCategory(ctx context.Context, cmd *usecase.UpdateCategoryCommand) (usecase.Result[*usecase.UpdateCategoryOutput], error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(usecase.Result[*usecase.UpdateCategoryOutput]), args.Error(1)
}

func (m *categoryUCMock) GetCategory(ctx context.Context, id string) (*usecase.CategoryOutput, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*usecase.CategoryOutput)
	return out, args.Error(1)
}

func (m *categoryUCMock) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *categoryUCMock) ListCategories(ctx context.Context, query domain.CategorySearchQuery) (*domain.Pagination[usecase.CategoryListOutput], error) {
	args := m.Called(ctx, query)
	out, _ := args.Get(0).(*domain.Pagination[usecase.CategoryListOutput])
	return out, args.Error(1)
}

func newTestRouter(uc usecase.CategoryUC) http.Handler {
	r := chi.NewRouter()
	NewRouter(r, logger.NewNop()).Init(uc)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCreateCategory_Created(t *testing.T) {
	id := domain.NewCategoryID()

	uc := new(categoryUCMock)
	uc.On("CreateCategory", mock.Anything, mock.MatchedBy(func(cmd *usecase.CreateCategoryCommand) bool {
		return *cmd.Name == "Movies" && *cmd.Description == "All movies" && cmd.IsActive
	})).Return(usecase.Ok(&usecase.CreateCategoryOutput{ID: id}), nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodPost, "/api/v1/categories",
		`{"name":"Movies","description":"All movies"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, id.String(), decode[IDResponse](t, rec).ID)
	uc.AssertExpectations(t)
}

func TestCreateCategory_NullNameIsPassedThrough(t *testing.T) {
	uc := new(categoryUCMock)
	uc.On("CreateCategory", mock.Anything, mock.MatchedBy(func(cmd *usecase.CreateCategoryCommand) bool {
		return cmd.Name == nil && !cmd.IsActive
	})).Return(usecase.Fail[*usecase.CreateCategoryOutput](domain.NotificationWith(domain.ErrMsgNameNull)), nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodPost, "/api/v1/categories", `{"name":null,"is_active":false}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, "name must not be null", body.Message)
	assert.Equal(t, []domain.ErrorMessage{domain.ErrMsgNameNull}, body.Errors)
}

func TestCreateCategory_MalformedBody(t *testing.T) {
	uc := new(categoryUCMock)
	h := newTestRouter(uc)

	for _, body := range []string{`{"name":`, `{"name":"Movies"}{}`, `{"title":"Movies"}`, `[]`} {
		rec := do(t, h, http.MethodPost, "/api/v1/categories", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	uc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCreateCategory_UnexpectedError(t *testing.T) {
	uc := new(categoryUCMock)
	uc.On("CreateCategory", mock.Anything, mock.Anything).
		Return(usecase.Result[*usecase.CreateCategoryOutput]{}, context.DeadlineExceeded).Once()

	rec := do(t, newTestRouter(uc), http.MethodPost, "/api/v1/categories", `{"name":"Movies"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decode[ErrorResponse](t, rec).Message)
}

func TestCreateCategory_StorageFailureHidesCause(t *testing.T) {
	uc := new(categoryUCMock)
	uc.On("CreateCategory", mock.Anything, mock.Anything).
		Return(usecase.Fail[*usecase.CreateCategoryOutput](
			domain.NotificationFromError(errors.New("CategoryRepo.Create: insert category: connection reset")),
		), nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodPost, "/api/v1/categories", `{"name":"Movies"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, "internal server error", body.Message)
	assert.Empty(t, body.Errors)
	assert.NotContains(t, rec.Body.String(), "CategoryRepo")
}

func TestUpdateCategory_OK(t *testing.T) {
	id := domain.NewCategoryID()

	uc := new(categoryUCMock)
	uc.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(cmd *usecase.UpdateCategoryCommand) bool {
		return cmd.ID == id.String() && *cmd.Name == "Series" && cmd.Description == nil && cmd.IsActive
	})).Return(usecase.Ok(&usecase.UpdateCategoryOutput{ID: id}), nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodPut, "/api/v1/categories/"+id.String(), `{"name":"Series","is_active":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id.String(), decode[IDResponse](t, rec).ID)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	uc := new(categoryUCMock)
	uc.On("UpdateCategory", mock.Anything, mock.Anything).
		Return(usecase.Result[*usecase.UpdateCategoryOutput]{}, domain.NewNotFoundError("category not found for id 123")).Once()

	rec := do(t, newTestRouter(uc), http.MethodPut, "/api/v1/categories/123", `{"name":"Series"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "category not found for id 123", decode[ErrorResponse](t, rec).Message)
}

func TestUpdateCategory_ValidationErrors(t *testing.T) {
	n := domain.NewNotification()
	n.Append(domain.ErrMsgNameEmpty)
	n.Append(domain.ErrMsgNameLength)

	uc := new(categoryUCMock)
	uc.On("UpdateCategory", mock.Anything, mock.Anything).
		Return(usecase.Fail[*usecase.UpdateCategoryOutput](n), nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodPut, "/api/v1/categories/abc", `{"name":" "}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, domain.ErrMsgNameEmpty.Message, body.Message)
	assert.Len(t, body.Errors, 2)
}

func TestUpdateCategory_StorageFailureHidesCause(t *testing.T) {
	uc := new(categoryUCMock)
	uc.On("UpdateCategory", mock.Anything, mock.Anything).
		Return(usecase.Fail[*usecase.UpdateCategoryOutput](
			domain.NotificationFromError(errors.New("CategoryRepo.Update: update category: broken pipe")),
		), nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodPut, "/api/v1/categories/abc", `{"name":"Series"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "broken pipe")
}

func TestGetCategory(t *testing.T) {
	id := domain.NewCategoryID()
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	uc := new(categoryUCMock)
	uc.On("GetCategory", mock.Anything, id.String()).Return(&usecase.CategoryOutput{
		ID: id, Name: "Movies", IsActive: true, CreatedAt: created, UpdatedAt: created,
	}, nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodGet, "/api/v1/categories/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[CategoryResponse](t, rec)
	assert.Equal(t, "Movies", body.Name)
	assert.Nil(t, body.Description)
	assert.True(t, body.CreatedAt.Equal(created))
	assert.Contains(t, rec.Body.String(), `"deleted_at":null`)
}

func TestGetCategory_NotFound(t *testing.T) {
	uc := new(categoryUCMock)
	uc.On("GetCategory", mock.Anything, "nope").Return(nil, domain.NewNotFoundError("category not found for id nope")).Once()

	rec := do(t, newTestRouter(uc), http.MethodGet, "/api/v1/categories/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategories(t *testing.T) {
	id := domain.NewCategoryID()

	uc := new(categoryUCMock)
	uc.On("ListCategories", mock.Anything, domain.NewCategorySearchQuery(2, 20, "mov", "createdAt", "desc")).
		Return(domain.NewPagination(2, 20, 21, []usecase.CategoryListOutput{{ID: id, Name: "Movies"}}), nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodGet,
		"/api/v1/categories?page=2&perPage=20&search=mov&sort=createdAt&dir=desc", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[CategoryListResponse](t, rec)
	assert.Equal(t, 2, body.CurrentPage)
	assert.Equal(t, int64(21), body.Total)
	require.Len(t, body.Items, 1)
	assert.Equal(t, id.String(), body.Items[0].ID)
}

func TestListCategories_Defaults(t *testing.T) {
	uc := new(categoryUCMock)
	uc.On("ListCategories", mock.Anything, domain.NewCategorySearchQuery(usecase.DefaultPage, usecase.DefaultPerPage, "", "", "")).
		Return(domain.NewPagination(1, 10, 0, []usecase.CategoryListOutput{}), nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodGet, "/api/v1/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestListCategories_BadQuery(t *testing.T) {
	uc := new(categoryUCMock)

	rec := do(t, newTestRouter(uc), http.MethodGet, "/api/v1/categories?page=first", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "ListCategories", mock.Anything, mock.Anything)
}

func TestDeleteCategory(t *testing.T) {
	id := domain.NewCategoryID()

	uc := new(categoryUCMock)
	uc.On("DeleteCategory", mock.Anything, id.String()).Return(nil).Once()

	rec := do(t, newTestRouter(uc), http.MethodDelete, "/api/v1/categories/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteCategory_InfrastructureFailure(t *testing.T) {
	uc := new(categoryUCMock)
	uc.On("DeleteCategory", mock.Anything, "x").Return(domain.NewInfrastructureError(assert.AnError)).Once()

	rec := do(t, newTestRouter(uc), http.MethodDelete, "/api/v1/categories/x", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestSwaggerDocIsServed(t *testing.T) {
	rec := do(t, newTestRouter(new(categoryUCMock)), http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/categories/{id}")
}
