package http

import (
	_ "github.com/DRSN-tech/visual-search/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(searchUC usecase.SearchUC, prUC usecase.ProductUC, indexUC usecase.IndexAdminUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		searchHandler := NewSearchHandler(searchUC, r.logger)
		prHandler := NewProductHandler(prUC, r.logger)
		adminHandler := NewAdminHandler(indexUC, r.logger)

		registerSearchRoutes(v1, searchHandler)
		registerProductRoutes(v1, prHandler)
		registerAdminRoutes(v1, prHandler, adminHandler)
	})
}

func registerSearchRoutes(router chi.Router, searchHandler *SearchHandler) {
	router.Post("/search", searchHandler.searchByImage)
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.getProductsInfo)
	})
}

func registerAdminRoutes(router chi.Router, prHandler *ProductHandler, adminHandler *AdminHandler) {
	router.Route("/admin", func(admin chi.Router) {
		admin.Post("/products", prHandler.registerNewProduct)
		admin.Route("/index", func(idx chi.Router) {
			idx.Post("/rebuild", adminHandler.rebuildIndex)
			idx.Get("/status", adminHandler.indexStatus)
		})
	})
}
