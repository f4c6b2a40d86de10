package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/internal/rank"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakePreprocessor struct {
	calls  int
	tensor *domain.Tensor
	err    error
}

func (f *fakePreprocessor) Run(query *domain.QueryImage, removeBackground bool) (*domain.Tensor, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.tensor, nil
}

type fakeEmbedder struct {
	calls  int
	vector []float32
	delay  time.Duration
	err    error
}

func (f *fakeEmbedder) Embed(ctx context.Context, tensor *domain.Tensor) (*EmbedRes, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return NewEmbedRes(f.vector, "dinov2-base-v1"), nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, tensors []*domain.Tensor) ([]EmbedRes, error) {
	res := make([]EmbedRes, 0, len(tensors))
	for range tensors {
		r, err := f.Embed(ctx, nil)
		if err != nil {
			return nil, err
		}
		res = append(res, *r)
	}

	return res, nil
}

func searchCfg() *cfg.SearchCfg {
	return &cfg.SearchCfg{
		Timeout:     30 * time.Second,
		DefaultTopK: 12,
		MaxTopK:     100,
	}
}

func newTestIndex(t *testing.T, vectors map[string][]float32) *index.Index {
	t.Helper()

	idx := index.New(nopLogger{}, 2)
	for code, vec := range vectors {
		require.NoError(t, idx.Upsert(code, vec))
	}

	return idx
}

func newSearchUC(idx *index.Index, pre *fakePreprocessor, emb *fakeEmbedder, c *cfg.SearchCfg) *SearchUseCase {
	return NewSearchUC(pre, emb, idx, rank.NewBruteForce(), c, nopLogger{})
}

func searchReq(topK int) *SearchReq {
	return NewSearchReq(domain.NewQueryImage([]byte{0xFF, 0xD8, 0xFF}, "image/jpeg", "test"), true, topK)
}

func TestSearch_RanksByCosineSimilarity(t *testing.T) {
	idx := newTestIndex(t, map[string][]float32{
		"TSHIRT-RED": {1, 0},
		"JEANS-BLUE": {0, 1},
		"TSHIRT-ORG": {0.99, 0.14},
	})
	pre := &fakePreprocessor{tensor: &domain.Tensor{}}
	emb := &fakeEmbedder{vector: []float32{1, 0}}

	res, err := newSearchUC(idx, pre, emb, searchCfg()).Search(context.Background(), searchReq(3))
	require.NoError(t, err)

	require.Len(t, res.Results, 3)
	assert.Equal(t, "TSHIRT-RED", res.Results[0].ProductCode)
	assert.Equal(t, "TSHIRT-ORG", res.Results[1].ProductCode)
	assert.Equal(t, "JEANS-BLUE", res.Results[2].ProductCode)
	assert.InDelta(t, 1.0, res.Results[0].Score, 1e-4)
}

func TestSearch_ResultLengthIsMinOfTopKAndIndexSize(t *testing.T) {
	idx := newTestIndex(t, map[string][]float32{
		"A": {1, 0},
		"B": {0, 1},
		"C": {1, 1},
	})
	pre := &fakePreprocessor{tensor: &domain.Tensor{}}
	emb := &fakeEmbedder{vector: []float32{1, 0}}
	uc := newSearchUC(idx, pre, emb, searchCfg())

	res, err := uc.Search(context.Background(), searchReq(2))
	require.NoError(t, err)
	assert.Len(t, res.Results, 2)

	res, err = uc.Search(context.Background(), searchReq(50))
	require.NoError(t, err)
	assert.Len(t, res.Results, 3)
}

func TestSearch_DefaultTopK(t *testing.T) {
	vectors := make(map[string][]float32, 20)
	for i := 0; i < 20; i++ {
		vectors[string(rune('A'+i))] = []float32{1, float32(i)}
	}
	idx := newTestIndex(t, vectors)
	pre := &fakePreprocessor{tensor: &domain.Tensor{}}
	emb := &fakeEmbedder{vector: []float32{1, 0}}

	res, err := newSearchUC(idx, pre, emb, searchCfg()).Search(context.Background(), searchReq(0))
	require.NoError(t, err)
	assert.Len(t, res.Results, 12)
}

func TestSearch_TopKAboveLimitClamped(t *testing.T) {
	idx := newTestIndex(t, map[string][]float32{
		"A": {1, 0},
		"B": {0, 1},
		"C": {1, 1},
	})
	pre := &fakePreprocessor{tensor: &domain.Tensor{}}
	emb := &fakeEmbedder{vector: []float32{1, 0}}
	c := searchCfg()
	c.MaxTopK = 2

	res, err := newSearchUC(idx, pre, emb, c).Search(context.Background(), searchReq(1000))
	require.NoError(t, err)
	assert.Len(t, res.Results, 2)
}

func TestSearch_EmptyCatalogReturnsEmpty(t *testing.T) {
	idx := index.New(nopLogger{}, 2)
	pre := &fakePreprocessor{tensor: &domain.Tensor{}}
	emb := &fakeEmbedder{vector: []float32{1, 0}}

	res, err := newSearchUC(idx, pre, emb, searchCfg()).Search(context.Background(), searchReq(12))
	require.NoError(t, err)
	assert.Empty(t, res.Results)
}

func TestSearch_ValidationBeforeModel(t *testing.T) {
	idx := newTestIndex(t, map[string][]float32{"A": {1, 0}})

	tests := []struct {
		name    string
		req     *SearchReq
		wantErr error
	}{
		{
			name:    "nil image",
			req:     &SearchReq{Image: nil, TopK: 5},
			wantErr: e.ErrNoImage,
		},
		{
			name:    "empty image data",
			req:     NewSearchReq(domain.NewQueryImage(nil, "", "t"), true, 5),
			wantErr: e.ErrNoImage,
		},
		{
			name:    "negative topK",
			req:     searchReq(-1),
			wantErr: e.ErrInvalidTopK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pre := &fakePreprocessor{tensor: &domain.Tensor{}}
			emb := &fakeEmbedder{vector: []float32{1, 0}}

			_, err := newSearchUC(idx, pre, emb, searchCfg()).Search(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, pre.calls, "preprocessor must not be called on invalid input")
			assert.Zero(t, emb.calls, "embedder must not be called on invalid input")
		})
	}
}

func TestSearch_SameImageSameResults(t *testing.T) {
	idx := newTestIndex(t, map[string][]float32{
		"A": {1, 0},
		"B": {0.7, 0.7},
		"C": {0, 1},
	})
	pre := &fakePreprocessor{tensor: &domain.Tensor{}}
	emb := &fakeEmbedder{vector: []float32{0.9, 0.1}}
	uc := newSearchUC(idx, pre, emb, searchCfg())

	first, err := uc.Search(context.Background(), searchReq(3))
	require.NoError(t, err)
	second, err := uc.Search(context.Background(), searchReq(3))
	require.NoError(t, err)

	assert.Equal(t, first.Results, second.Results)
}

func TestSearch_PreprocessErrorPropagates(t *testing.T) {
	idx := newTestIndex(t, map[string][]float32{"A": {1, 0}})
	pre := &fakePreprocessor{err: e.ErrDecodeFailed}
	emb := &fakeEmbedder{vector: []float32{1, 0}}

	_, err := newSearchUC(idx, pre, emb, searchCfg()).Search(context.Background(), searchReq(5))

	require.ErrorIs(t, err, e.ErrDecodeFailed)
	assert.Zero(t, emb.calls)
}

func TestSearch_TimeoutMapsToSearchTimeout(t *testing.T) {
	idx := newTestIndex(t, map[string][]float32{"A": {1, 0}})
	pre := &fakePreprocessor{tensor: &domain.Tensor{}}
	emb := &fakeEmbedder{vector: []float32{1, 0}, delay: 200 * time.Millisecond}
	c := searchCfg()
	c.Timeout = 20 * time.Millisecond

	_, err := newSearchUC(idx, pre, emb, c).Search(context.Background(), searchReq(5))

	require.ErrorIs(t, err, e.ErrSearchTimeout)
}

func TestSearch_TookMsReported(t *testing.T) {
	idx := newTestIndex(t, map[string][]float32{"A": {1, 0}})
	pre := &fakePreprocessor{tensor: &domain.Tensor{}}
	emb := &fakeEmbedder{vector: []float32{1, 0}, delay: 15 * time.Millisecond}

	res, err := newSearchUC(idx, pre, emb, searchCfg()).Search(context.Background(), searchReq(1))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.TookMs, int64(10))
}
