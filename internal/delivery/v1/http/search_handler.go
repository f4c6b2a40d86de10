package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/google/uuid"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUC
	logger        logger.Logger
}

func NewSearchHandler(searchUsecase usecase.SearchUC, logger logger.Logger) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase, logger: logger}
}

type searchResultResponse struct {
	ProductCode string  `json:"product_code"`
	Score       float32 `json:"score"`
}

type searchResponse struct {
	Results []searchResultResponse `json:"results"`
	TookMs  int64                  `json:"took_ms"`
}

// searchByImage
//
//	@Summary		Визуальный поиск товаров
//	@Description	Находит визуально похожие товары каталога по изображению-запросу
//	@Tags			search
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image		formData	file	true	"Изображение-запрос"
//	@Param			topK		formData	integer	false	"Размер выдачи (по умолчанию 12)"
//	@Param			removeBg	formData	boolean	false	"Удалять фон (по умолчанию true)"
//	@Success		200					{object}	searchResponse	"Похожие товары"
//	@Failure		400					{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		503					{object}	ErrorResponse	"Модель недоступна"
//	@Failure		504					{object}	ErrorResponse	"Таймаут поиска"
//	@Router			/search [post]
func (s *SearchHandler) searchByImage(w http.ResponseWriter, r *http.Request) {
	const (
		maxImageSize = 15 << 20
		maxMemory    = 16 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		s.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrNoImage.Error())
		WriteError(w, e.ErrNoImage)
		return
	}

	data, mimeType, err := readFile(files[0], maxImageSize)
	if err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	removeBackground, err := parseRemoveBackground(r.FormValue("removeBg"))
	if err != nil {
		s.logger.Warnf("%d %s: removeBg=%s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.FormValue("removeBg"))
		WriteError(w, err)
		return
	}

	topK, err := parseTopK(r.FormValue("topK"))
	if err != nil {
		s.logger.Warnf("%d %s: topK=%s", http.StatusBadRequest, e.ErrInvalidTopK.Error(), r.FormValue("topK"))
		WriteError(w, err)
		return
	}

	correlationID := uuid.NewString()
	image := domain.NewQueryImage(data, mimeType, correlationID)

	res, err := s.searchUsecase.Search(r.Context(), usecase.NewSearchReq(image, removeBackground, topK))
	if err != nil {
		s.logger.Warnf("search failed (correlation_id=%s): %s", correlationID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSearchResponse(res))
}

// parseRemoveBackground трактует отсутствующее значение как true.
func parseRemoveBackground(raw string) (bool, error) {
	if raw == "" {
		return true, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, e.ErrStatusBadRequest
	}

	return value, nil
}

// parseTopK возвращает 0 для отсутствующего значения, дефолт применяет usecase.
func parseTopK(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, e.ErrInvalidTopK
	}

	return value, nil
}

func toSearchResponse(res *usecase.SearchRes) searchResponse {
	results := make([]searchResultResponse, 0, len(res.Results))
	for _, r := range res.Results {
		results = append(results, searchResultResponse{
			ProductCode: r.ProductCode,
			Score:       r.Score,
		})
	}

	return searchResponse{
		Results: results,
		TookMs:  res.TookMs,
	}
}
