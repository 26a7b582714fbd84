package http

import (
	_ "github.com/DRSN-tech/catalog-admin/docs" // регистрация swagger-спецификации
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(categoryUC usecase.CategoryUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(requestLogger(r.logger))
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCategoryRoutes(v1, NewCategoryHandler(categoryUC, r.logger))
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(cr chi.Router) {
		cr.Post("/", h.createCategory)
		cr.Get("/", h.listCategories)
		cr.Get("/{id}", h.getCategory)
		cr.Put("/{id}", h.updateCategory)
		cr.Delete("/{id}", h.deleteCategory)
	})
}
