package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// registerNewProduct
//
//	@Summary		Регистрация нового товара
//	@Description	Создает новый товар в каталоге с изображениями и индексирует его для визуального поиска
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			code			formData	string					true	"Артикул товара"
//	@Param			name			formData	string					true	"Название товара"
//	@Param			category		formData	string					true	"Категория"
//	@Param			price			formData	number					true	"Цена"
//	@Param			images			formData	file					true	"Изображения товара"
//	@Success		201				{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/admin/products [post]
func (p *ProductHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	prMeta, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		if !errors.Is(err, e.ErrNoImages) {
			p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
	}

	event, err := p.productUsecase.RegisterNewProduct(r.Context(),
		usecase.NewAddNewProductReq(prMeta.Code, prMeta.Name, prMeta.CategoryName, prMeta.Price, images))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"EventID": event.EventID,
	})
}

// getProductsInfo
//
//	@Summary		Информация о товарах
//	@Description	Возвращает карточки товаров по списку артикулов
//	@Tags			products
//	@Produce		json
//	@Param			codes	query		string					true	"Артикулы через запятую"
//	@Success		200		{object}	map[string]interface{}	"Карточки товаров"
//	@Failure		400		{object}	ErrorResponse	"Не переданы артикулы"
//	@Router			/products [get]
func (p *ProductHandler) getProductsInfo(w http.ResponseWriter, r *http.Request) {
	codes := parseCodes(r.URL.Query().Get("codes"))
	if len(codes) == 0 {
		p.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrNoProducts.Error())
		WriteError(w, e.ErrNoProducts)
		return
	}

	res, err := p.productUsecase.GetProductsInfo(r.Context(), usecase.NewGetProductsReq(codes))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":  res.Products,
		"not_found": res.NotFoundProducts,
	})
}

func parseCodes(raw string) []string {
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}

	return codes
}
