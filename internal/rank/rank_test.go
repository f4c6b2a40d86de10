package rank

import (
	"context"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSnapshot(t *testing.T, dim int, vectors map[string][]float32) *index.Snapshot {
	t.Helper()

	b := index.NewBuilder(dim)
	for code, vec := range vectors {
		require.NoError(t, b.Add(code, vec))
	}

	return b.Snapshot()
}

func TestBruteForce_Ordering(t *testing.T) {
	snap := buildSnapshot(t, 2, map[string][]float32{
		"P-ORTHO": {0, 1},
		"P-EXACT": {1, 0},
		"P-CLOSE": {0.99, 0.14},
	})

	results, err := NewBruteForce().Rank(context.Background(), []float32{1, 0}, snap, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "P-EXACT", results[0].ProductCode)
	assert.Equal(t, "P-CLOSE", results[1].ProductCode)
	assert.Equal(t, "P-ORTHO", results[2].ProductCode)

	assert.InDelta(t, 1.0, float64(results[0].Score), 1e-4)
	assert.InDelta(t, 0.0, float64(results[2].Score), 1e-4)

	// невозрастающая последовательность близостей
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestBruteForce_TieBreakByCode(t *testing.T) {
	snap := buildSnapshot(t, 2, map[string][]float32{
		"B": {1, 0},
		"A": {1, 0},
		"C": {2, 0}, // тот же косинус, другая длина
	})

	results, err := NewBruteForce().Rank(context.Background(), []float32{1, 0}, snap, 3)
	require.NoError(t, err)

	assert.Equal(t, "A", results[0].ProductCode)
	assert.Equal(t, "B", results[1].ProductCode)
	assert.Equal(t, "C", results[2].ProductCode)
}

func TestBruteForce_TopKTruncation(t *testing.T) {
	snap := buildSnapshot(t, 2, map[string][]float32{
		"A": {1, 0},
		"B": {0.9, 0.1},
		"C": {0, 1},
	})

	results, err := NewBruteForce().Rank(context.Background(), []float32{1, 0}, snap, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// topK больше размера индекса — возвращаем все, без ошибки
	results, err = NewBruteForce().Rank(context.Background(), []float32{1, 0}, snap, 50)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestBruteForce_EmptyIndex(t *testing.T) {
	snap := buildSnapshot(t, 2, nil)

	results, err := NewBruteForce().Rank(context.Background(), []float32{1, 0}, snap, 12)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBruteForce_Validation(t *testing.T) {
	snap := buildSnapshot(t, 2, map[string][]float32{"A": {1, 0}})
	bf := NewBruteForce()

	_, err := bf.Rank(context.Background(), []float32{1, 0}, snap, 0)
	assert.ErrorIs(t, err, e.ErrInvalidTopK)

	_, err = bf.Rank(context.Background(), []float32{1, 0, 0}, snap, 3)
	assert.ErrorIs(t, err, e.ErrDimensionMismatch)

	_, err = bf.Rank(context.Background(), []float32{0, 0}, snap, 3)
	assert.ErrorIs(t, err, e.ErrDegenerateEmbedding)
}

func TestBruteForce_ScaleInvariant(t *testing.T) {
	snap := buildSnapshot(t, 2, map[string][]float32{"A": {0.6, 0.8}})
	bf := NewBruteForce()

	small, err := bf.Rank(context.Background(), []float32{3, 4}, snap, 1)
	require.NoError(t, err)

	big, err := bf.Rank(context.Background(), []float32{300, 400}, snap, 1)
	require.NoError(t, err)

	assert.InDelta(t, float64(small[0].Score), float64(big[0].Score), 1e-6)
	assert.InDelta(t, 1.0, float64(small[0].Score), 1e-4)
}

type fakeSearcher struct {
	results []domain.SimilarityResult
	err     error
	gotVec  []float32
	gotLims []uint64
}

func (f *fakeSearcher) Search(_ context.Context, vector []float32, limit uint64) ([]domain.SimilarityResult, error) {
	f.gotVec = vector
	f.gotLims = append(f.gotLims, limit)

	if f.err != nil {
		return nil, f.err
	}

	results := f.results
	if uint64(len(results)) > limit {
		results = results[:limit]
	}

	return results, nil
}

func TestQdrant_DelegatesAndSorts(t *testing.T) {
	searcher := &fakeSearcher{results: []domain.SimilarityResult{
		{ProductCode: "B", Score: 0.9},
		{ProductCode: "A", Score: 0.9},
		{ProductCode: "C", Score: 0.95},
	}}

	snap := buildSnapshot(t, 2, map[string][]float32{"A": {1, 0}})

	results, err := NewQdrant(searcher).Rank(context.Background(), []float32{1, 0}, snap, 3)
	require.NoError(t, err)

	assert.Equal(t, []uint64{3}, searcher.gotLims)
	assert.Equal(t, "C", results[0].ProductCode)
	assert.Equal(t, "A", results[1].ProductCode)
	assert.Equal(t, "B", results[2].ProductCode)
}

func TestQdrant_CollapsesDuplicateProducts(t *testing.T) {
	// по точке на изображение: DRESS-1 представлен дважды
	searcher := &fakeSearcher{results: []domain.SimilarityResult{
		{ProductCode: "DRESS-1", Score: 0.97},
		{ProductCode: "DRESS-1", Score: 0.95},
		{ProductCode: "SHIRT-2", Score: 0.90},
		{ProductCode: "JEANS-3", Score: 0.85},
	}}

	snap := buildSnapshot(t, 2, map[string][]float32{"A": {1, 0}})

	results, err := NewQdrant(searcher).Rank(context.Background(), []float32{1, 0}, snap, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// первая выборка вся ушла на дубли, лимит добирается повторным запросом
	assert.Equal(t, []uint64{2, 4}, searcher.gotLims)

	assert.Equal(t, "DRESS-1", results[0].ProductCode)
	assert.InDelta(t, 0.97, float64(results[0].Score), 1e-6)
	assert.Equal(t, "SHIRT-2", results[1].ProductCode)

	seen := make(map[string]int)
	for _, r := range results {
		seen[r.ProductCode]++
		assert.LessOrEqual(t, seen[r.ProductCode], 1)
	}
}

func TestQdrant_DuplicatesOnlyCatalogSmallerThanTopK(t *testing.T) {
	// в коллекции один артикул с двумя точками: выдача короче topK, без ошибки
	searcher := &fakeSearcher{results: []domain.SimilarityResult{
		{ProductCode: "DRESS-1", Score: 0.97},
		{ProductCode: "DRESS-1", Score: 0.95},
	}}

	snap := buildSnapshot(t, 2, map[string][]float32{"A": {1, 0}})

	results, err := NewQdrant(searcher).Rank(context.Background(), []float32{1, 0}, snap, 3)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "DRESS-1", results[0].ProductCode)
	assert.InDelta(t, 0.97, float64(results[0].Score), 1e-6)
}

func TestQdrant_ValidatesBeforeCall(t *testing.T) {
	searcher := &fakeSearcher{}
	snap := buildSnapshot(t, 2, map[string][]float32{"A": {1, 0}})

	_, err := NewQdrant(searcher).Rank(context.Background(), []float32{0, 0}, snap, 3)
	assert.ErrorIs(t, err, e.ErrDegenerateEmbedding)
	assert.Nil(t, searcher.gotVec)
}
