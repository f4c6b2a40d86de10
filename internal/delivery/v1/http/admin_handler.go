package http

import (
	"net/http"

	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/logger"
)

type AdminHandler struct {
	indexUsecase usecase.IndexAdminUC
	logger       logger.Logger
}

func NewAdminHandler(indexUsecase usecase.IndexAdminUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{indexUsecase: indexUsecase, logger: logger}
}

type rebuildResponse struct {
	Indexed      int      `json:"indexed"`
	Skipped      []string `json:"skipped"`
	ModelVersion string   `json:"model_version"`
	TookMs       int64    `json:"took_ms"`
}

type indexStatusResponse struct {
	Size         int    `json:"size"`
	Dim          int    `json:"dim"`
	ModelVersion string `json:"model_version"`
}

// rebuildIndex
//
//	@Summary		Пересборка embedding-индекса
//	@Description	Полностью пересобирает индекс из изображений каталога в объектном хранилище
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	rebuildResponse	"Отчет о пересборке"
//	@Failure		500	{object}	ErrorResponse	"Ошибка пересборки"
//	@Router			/admin/index/rebuild [post]
func (a *AdminHandler) rebuildIndex(w http.ResponseWriter, r *http.Request) {
	report, err := a.indexUsecase.Rebuild(r.Context())
	if err != nil {
		a.logger.Warnf("index rebuild failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	skipped := report.Skipped
	if skipped == nil {
		skipped = []string{}
	}

	WriteSuccess(w, http.StatusOK, rebuildResponse{
		Indexed:      report.Indexed,
		Skipped:      skipped,
		ModelVersion: report.ModelVersion,
		TookMs:       report.TookMs,
	})
}

// indexStatus
//
//	@Summary		Состояние embedding-индекса
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	indexStatusResponse	"Текущее состояние"
//	@Router			/admin/index/status [get]
func (a *AdminHandler) indexStatus(w http.ResponseWriter, r *http.Request) {
	status := a.indexUsecase.Status()

	WriteSuccess(w, http.StatusOK, indexStatusResponse{
		Size:         status.Size,
		Dim:          status.Dim,
		ModelVersion: status.ModelVersion,
	})
}
