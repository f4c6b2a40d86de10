package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/internal/rank"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
)

// SearchUseCase — оркестратор визуального поиска. Шаги строго последовательны:
// препроцессинг, извлечение эмбеддинга, ранжирование. Любая ошибка шага
// завершает запрос целиком, частичная выдача не возвращается.
type SearchUseCase struct {
	preprocessor PreprocessInfra
	embedder     EmbedderInfra
	idx          *index.Index
	ranker       rank.Strategy
	cfg          *cfg.SearchCfg
	logger       logger.Logger
}

func NewSearchUC(
	preprocessor PreprocessInfra,
	embedder EmbedderInfra,
	idx *index.Index,
	ranker rank.Strategy,
	cfg *cfg.SearchCfg,
	logger logger.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		preprocessor: preprocessor,
		embedder:     embedder,
		idx:          idx,
		ranker:       ranker,
		cfg:          cfg,
		logger:       logger,
	}
}

// Search выполняет поиск похожих товаров по изображению.
// Валидация выполняется до любого обращения к модели. На весь запрос
// действует бюджет cfg.Timeout, превышение дает e.ErrSearchTimeout.
func (s *SearchUseCase) Search(ctx context.Context, req *SearchReq) (*SearchRes, error) {
	const op = "SearchUseCase.Search"

	topK, err := s.validate(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	correlationID := req.Image.CorrelationID
	s.logger.Debugf("%s: received (correlation_id=%s, top_k=%d, remove_bg=%t)",
		op, correlationID, topK, req.RemoveBackground)

	// Снапшот фиксируется на весь запрос: конкурентные обновления индекса
	// не меняют выдачу на полпути.
	snap := s.idx.Snapshot()

	started := time.Now()

	s.logger.Debugf("%s: preprocessing (correlation_id=%s)", op, correlationID)
	tensor, err := s.preprocessor.Run(req.Image, req.RemoveBackground)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := s.checkBudget(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Debugf("%s: extracting (correlation_id=%s)", op, correlationID)
	embedding, err := s.embedder.Embed(ctx, tensor)
	if err != nil {
		return nil, e.Wrap(op, s.mapBudgetErr(ctx, err))
	}
	if err := s.checkBudget(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Debugf("%s: ranking over %d entries (correlation_id=%s)", op, snap.Size(), correlationID)
	results, err := s.ranker.Rank(ctx, embedding.Vector, snap, topK)
	if err != nil {
		return nil, e.Wrap(op, s.mapBudgetErr(ctx, err))
	}

	tookMs := time.Since(started).Milliseconds()
	s.logger.Infof("%s: completed, %d results in %dms (correlation_id=%s)",
		op, len(results), tookMs, correlationID)

	return NewSearchRes(results, tookMs), nil
}

// validate проверяет запрос и возвращает эффективный topK.
func (s *SearchUseCase) validate(req *SearchReq) (int, error) {
	if req == nil || req.Image == nil || len(req.Image.Data) == 0 {
		return 0, e.ErrNoImage
	}

	topK := req.TopK
	if topK == 0 {
		topK = s.cfg.DefaultTopK
	}
	if topK < 1 {
		return 0, e.ErrInvalidTopK
	}
	if topK > s.cfg.MaxTopK {
		s.logger.Warnf("topK %d exceeds limit, clamped to %d", topK, s.cfg.MaxTopK)
		topK = s.cfg.MaxTopK
	}

	return topK, nil
}

func (s *SearchUseCase) checkBudget(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return s.mapBudgetErr(ctx, ctx.Err())
	default:
		return nil
	}
}

// mapBudgetErr переводит истечение бюджета запроса в e.ErrSearchTimeout.
func (s *SearchUseCase) mapBudgetErr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return e.ErrSearchTimeout
	}

	return err
}
