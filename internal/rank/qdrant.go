package rank

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
)

// VectorSearcher — поиск ближайших векторов во внешнем ANN-хранилище.
type VectorSearcher interface {
	Search(ctx context.Context, vector []float32, limit uint64) ([]domain.SimilarityResult, error)
}

// Qdrant делегирует ранжирование коллекции Qdrant. Контракт тот же, что у
// BruteForce: валидация запроса до похода в хранилище, детерминированный
// порядок выдачи, не больше одной позиции на артикул.
type Qdrant struct {
	searcher VectorSearcher
}

func NewQdrant(searcher VectorSearcher) *Qdrant {
	return &Qdrant{searcher: searcher}
}

func (q *Qdrant) Rank(ctx context.Context, query []float32, snap *index.Snapshot, topK int) ([]domain.SimilarityResult, error) {
	if topK < 1 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidTopK)
	}
	if len(query) != snap.Dim() {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrDimensionMismatch)
	}
	if norm(query) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrDegenerateEmbedding)
	}

	// Коллекция хранит по точке на каждое изображение продукта, поэтому один
	// артикул может занимать несколько позиций выдачи. Схлопываем до лучшей
	// точки артикула и добираем с запасом, пока не наберем topK уникальных
	// или не исчерпаем коллекцию.
	limit := uint64(topK)
	for {
		results, err := q.searcher.Search(ctx, query, limit)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		best := make(map[string]float32, len(results))
		for _, r := range results {
			if score, ok := best[r.ProductCode]; !ok || r.Score > score {
				best[r.ProductCode] = r.Score
			}
		}

		exhausted := uint64(len(results)) < limit
		if len(best) < topK && !exhausted {
			limit *= 2
			continue
		}

		deduped := make([]domain.SimilarityResult, 0, len(best))
		for code, score := range best {
			deduped = append(deduped, domain.SimilarityResult{ProductCode: code, Score: score})
		}

		// Qdrant сортирует по убыванию близости, но порядок при равных
		// близостях не определен. Выравниваем под общий контракт.
		SortResults(deduped)

		if len(deduped) > topK {
			deduped = deduped[:topK]
		}

		return deduped, nil
	}
}
