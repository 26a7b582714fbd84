package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// createCategory
//
//	@Summary		Создание категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		CategoryRequest	true	"Категория"
//	@Success		201			{object}	IDResponse
//	@Failure		400			{object}	ErrorResponse	"Некорректное тело запроса"
//	@Failure		422			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		500			{object}	ErrorResponse
//	@Router			/categories [post]
func (h *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCategoryRequest(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.categoryUsecase.CreateCategory(r.Context(),
		usecase.NewCreateCategoryCommand(req.Name, req.Description, req.isActive()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !res.IsOk() {
		h.writeRejection(w, r, "create", res.Notification())
		return
	}

	WriteSuccess(w, http.StatusCreated, IDResponse{ID: res.Value().ID.String()})
}

// listCategories
//
//	@Summary		Листинг категорий
//	@Tags			categories
//	@Produce		json
//	@Param			page	query		int		false	"Номер страницы"	default(1)
//	@Param			perPage	query		int		false	"Размер страницы"	default(10)
//	@Param			search	query		string	false	"Поиск по имени и описанию"
//	@Param			sort	query		string	false	"name | createdAt | updatedAt"	default(name)
//	@Param			dir		query		string	false	"asc | desc"	default(asc)
//	@Success		200		{object}	CategoryListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/categories [get]
func (h *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	query, err := parseSearchQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.categoryUsecase.ListCategories(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryListResponse(page))
}

// getCategory
//
//	@Summary		Получение категории по ID
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		string	true	"ID категории"
//	@Success		200	{object}	CategoryResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categories/{id} [get]
func (h *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryUsecase.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// updateCategory
//
//	@Summary		Изменение категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string			true	"ID категории"
//	@Param			category	body		CategoryRequest	true	"Категория"
//	@Success		200			{object}	IDResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/categories/{id} [put]
func (h *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCategoryRequest(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.categoryUsecase.UpdateCategory(r.Context(),
		usecase.NewUpdateCategoryCommand(chi.URLParam(r, "id"), req.Name, req.Description, req.isActive()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !res.IsOk() {
		h.writeRejection(w, r, "update", res.Notification())
		return
	}

	WriteSuccess(w, http.StatusOK, IDResponse{ID: res.Value().ID.String()})
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Tags			categories
//	@Param			id	path	string	true	"ID категории"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categories/{id} [delete]
func (h *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryUsecase.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeRejection отвечает 422 на ошибки валидации. Уведомление из сбоя хранилища
// логируется и отдаётся как 500 без текста исходной ошибки.
func (h *CategoryHandler) writeRejection(w http.ResponseWriter, r *http.Request, action string, n *domain.Notification) {
	if cause := n.Cause(); cause != nil {
		h.writeError(w, r, cause)
		return
	}

	h.logger.Debugf("%s category rejected: %s", action, n.FirstError())
	WriteError(w, NotificationResponse(n))
}

func (h *CategoryHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ToHTTPResponse(err)

	if resp.Code >= http.StatusInternalServerError {
		h.logger.Errorf(err, "%s %s", r.Method, r.URL.Path)
	} else {
		h.logger.Warnf("%d %s %s: %v", resp.Code, r.Method, r.URL.Path, err)
	}

	WriteError(w, resp)
}
