// Package rank ранжирует каталог по близости к вектору запроса.
// Каноничная стратегия — полный перебор с косинусной близостью; ANN-бэкенды
// подключаются через тот же интерфейс Strategy.
package rank

import (
	"context"
	"math"
	"sort"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
)

// Strategy — контракт ранжирования: не больше topK результатов, отсортированных
// по убыванию близости, при равенстве — по возрастанию артикула.
type Strategy interface {
	Rank(ctx context.Context, query []float32, snap *index.Snapshot, topK int) ([]domain.SimilarityResult, error)
}

// BruteForce считает косинусную близость линейным проходом по снапшоту.
// Для каталога в десятки тысяч позиций этого достаточно, а результат точный,
// без аппроксимации.
type BruteForce struct{}

func NewBruteForce() *BruteForce {
	return &BruteForce{}
}

func (b *BruteForce) Rank(_ context.Context, query []float32, snap *index.Snapshot, topK int) ([]domain.SimilarityResult, error) {
	if topK < 1 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidTopK)
	}
	if len(query) != snap.Dim() {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrDimensionMismatch)
	}

	queryNorm := norm(query)
	if queryNorm == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrDegenerateEmbedding)
	}

	entries := snap.Entries()
	results := make([]domain.SimilarityResult, 0, len(entries))

	for i := range entries {
		entry := &entries[i]
		results = append(results, domain.SimilarityResult{
			ProductCode: entry.ProductCode,
			Score:       cosine(query, queryNorm, entry.Vector),
		})
	}

	SortResults(results)

	if len(results) > topK {
		results = results[:topK]
	}

	return results, nil
}

// SortResults сортирует выдачу: близость по убыванию, при равенстве артикул
// по возрастанию. Порядок детерминирован для любого входа.
func SortResults(results []domain.SimilarityResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}

		return results[i].ProductCode < results[j].ProductCode
	})
}

func cosine(query []float32, queryNorm float64, vector []float32) float32 {
	var dot float64
	for i := range query {
		dot += float64(query[i]) * float64(vector[i])
	}

	vectorNorm := norm(vector)
	if vectorNorm == 0 {
		return 0
	}

	return float32(dot / (queryNorm * vectorNorm))
}

func norm(vector []float32) float64 {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}

	return math.Sqrt(sum)
}
