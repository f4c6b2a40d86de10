package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogSource struct {
	images  []CatalogImage
	objects map[string][]byte
	listErr error
}

func (f *fakeCatalogSource) List(ctx context.Context) ([]CatalogImage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.images, nil
}

func (f *fakeCatalogSource) Get(ctx context.Context, objectKey string) ([]byte, error) {
	data, ok := f.objects[objectKey]
	if !ok {
		return nil, assert.AnError
	}

	return data, nil
}

type fakeSnapshotStore struct {
	data  []byte
	saved int
}

func (f *fakeSnapshotStore) Save(ctx context.Context, data []byte) error {
	f.data = append([]byte(nil), data...)
	f.saved++
	return nil
}

func (f *fakeSnapshotStore) Load(ctx context.Context) ([]byte, error) {
	if f.data == nil {
		return nil, e.ErrSnapshotNotFound
	}

	return f.data, nil
}

type fakeProducer struct {
	messages []*WriteRawMessageReq
}

func (f *fakeProducer) WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error {
	f.messages = append(f.messages, req)
	return nil
}

type fakeEncoder struct{}

func (fakeEncoder) EncodeProductUpsert(eventID, productCode, imageKey, modelVersion string) ([]byte, error) {
	return []byte(eventID), nil
}

func (fakeEncoder) EncodeIndexRebuild(eventID string, report *domain.BuildReport) ([]byte, error) {
	return []byte(eventID), nil
}

// batchEmbedder выдает каждому тензору свой вектор по порядку вызовов.
type batchEmbedder struct {
	vectors [][]float32
	next    int
}

func (f *batchEmbedder) Embed(ctx context.Context, tensor *domain.Tensor) (*EmbedRes, error) {
	vec := f.vectors[f.next%len(f.vectors)]
	f.next++
	return NewEmbedRes(vec, "dinov2-base-v1"), nil
}

func (f *batchEmbedder) EmbedBatch(ctx context.Context, tensors []*domain.Tensor) ([]EmbedRes, error) {
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

func embedderCfg() *cfg.EmbedderCfg {
	return &cfg.EmbedderCfg{MaxConcurrent: 4, MaxRetries: 3, BatchSize: 2}
}

func TestRebuild_IndexesCatalog(t *testing.T) {
	source := &fakeCatalogSource{
		images: []CatalogImage{
			{ProductCode: "A", ObjectKey: "products/A/1.jpg"},
			{ProductCode: "B", ObjectKey: "products/B/1.jpg"},
			{ProductCode: "C", ObjectKey: "products/C/1.jpg"},
		},
		objects: map[string][]byte{
			"products/A/1.jpg": {1},
			"products/B/1.jpg": {2},
			"products/C/1.jpg": {3},
		},
	}
	idx := index.New(nopLogger{}, 2)
	store := &fakeSnapshotStore{}
	producer := &fakeProducer{}
	emb := &batchEmbedder{vectors: [][]float32{{1, 0}, {0, 1}, {1, 1}}}

	uc := NewIndexUC(source, &fakePreprocessor{tensor: &domain.Tensor{}}, emb, idx, store, producer, fakeEncoder{}, embedderCfg(), nopLogger{})

	report, err := uc.Rebuild(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Indexed)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, "dinov2-base-v1", report.ModelVersion)
	assert.Equal(t, 3, idx.Snapshot().Size())
	assert.Equal(t, 1, store.saved, "snapshot persisted after rebuild")
	assert.Len(t, producer.messages, 1, "rebuild event published")

	status := uc.Status()
	assert.Equal(t, 3, status.Size)
	assert.Equal(t, 2, status.Dim)
	assert.Equal(t, "dinov2-base-v1", status.ModelVersion)
}

func TestRebuild_SkipsBrokenProducts(t *testing.T) {
	source := &fakeCatalogSource{
		images: []CatalogImage{
			{ProductCode: "OK", ObjectKey: "products/OK/1.jpg"},
			{ProductCode: "MISSING", ObjectKey: "products/MISSING/1.jpg"},
			{ProductCode: "ZERO", ObjectKey: "products/ZERO/1.jpg"},
		},
		objects: map[string][]byte{
			"products/OK/1.jpg":   {1},
			"products/ZERO/1.jpg": {3},
		},
	}
	idx := index.New(nopLogger{}, 2)
	// Второй обработанный продукт получает нулевой вектор и отбраковывается
	emb := &batchEmbedder{vectors: [][]float32{{1, 0}, {0, 0}}}

	uc := NewIndexUC(source, &fakePreprocessor{tensor: &domain.Tensor{}}, emb, idx, &fakeSnapshotStore{}, &fakeProducer{}, fakeEncoder{}, embedderCfg(), nopLogger{})

	report, err := uc.Rebuild(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Indexed)
	assert.ElementsMatch(t, []string{"MISSING", "ZERO"}, report.Skipped)
	assert.Equal(t, 1, idx.Snapshot().Size())
}

type callRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *callRecorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

type recordingPreprocessor struct {
	rec *callRecorder
}

func (f *recordingPreprocessor) Run(query *domain.QueryImage, removeBackground bool) (*domain.Tensor, error) {
	f.rec.record("preprocess")
	return &domain.Tensor{}, nil
}

type recordingEmbedder struct {
	rec        *callRecorder
	batchSizes []int
}

func (f *recordingEmbedder) Embed(ctx context.Context, tensor *domain.Tensor) (*EmbedRes, error) {
	return NewEmbedRes([]float32{1, 0}, "dinov2-base-v1"), nil
}

func (f *recordingEmbedder) EmbedBatch(ctx context.Context, tensors []*domain.Tensor) ([]EmbedRes, error) {
	f.rec.record("embed")
	f.batchSizes = append(f.batchSizes, len(tensors))

	res := make([]EmbedRes, len(tensors))
	for i := range res {
		res[i] = *NewEmbedRes([]float32{1, 0}, "dinov2-base-v1")
	}

	return res, nil
}

func TestRebuild_EmbedsInBoundedBatches(t *testing.T) {
	images := make([]CatalogImage, 0, 5)
	objects := make(map[string][]byte, 5)
	for _, code := range []string{"A", "B", "C", "D", "E"} {
		key := fmt.Sprintf("products/%s/1.jpg", code)
		images = append(images, CatalogImage{ProductCode: code, ObjectKey: key})
		objects[key] = []byte{1}
	}
	source := &fakeCatalogSource{images: images, objects: objects}

	rec := &callRecorder{}
	pre := &recordingPreprocessor{rec: rec}
	emb := &recordingEmbedder{rec: rec}

	idx := index.New(nopLogger{}, 2)
	uc := NewIndexUC(source, pre, emb, idx, &fakeSnapshotStore{}, &fakeProducer{}, fakeEncoder{}, embedderCfg(), nopLogger{})

	report, err := uc.Rebuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, report.Indexed)

	// в модель уходят батчи не больше BatchSize
	assert.Equal(t, []int{2, 2, 1}, emb.batchSizes)

	// первый батч эмбеддится до препроцессинга последнего изображения:
	// тензоры не накапливаются на весь каталог
	firstEmbed, lastPreprocess := -1, -1
	for n, event := range rec.events {
		if event == "embed" && firstEmbed == -1 {
			firstEmbed = n
		}
		if event == "preprocess" {
			lastPreprocess = n
		}
	}
	require.NotEqual(t, -1, firstEmbed)
	assert.Less(t, firstEmbed, lastPreprocess)
}

func TestRestore_NoSnapshotStartsEmpty(t *testing.T) {
	idx := index.New(nopLogger{}, 2)
	uc := NewIndexUC(&fakeCatalogSource{}, &fakePreprocessor{tensor: &domain.Tensor{}}, &batchEmbedder{vectors: [][]float32{{1, 0}}}, idx, &fakeSnapshotStore{}, &fakeProducer{}, fakeEncoder{}, embedderCfg(), nopLogger{})

	require.NoError(t, uc.Restore(context.Background()))
	assert.Zero(t, idx.Snapshot().Size())
}

func TestRestore_RoundTripsRebuiltIndex(t *testing.T) {
	source := &fakeCatalogSource{
		images:  []CatalogImage{{ProductCode: "A", ObjectKey: "products/A/1.jpg"}},
		objects: map[string][]byte{"products/A/1.jpg": {1}},
	}
	store := &fakeSnapshotStore{}
	emb := &batchEmbedder{vectors: [][]float32{{0.5, 0.5}}}

	idx := index.New(nopLogger{}, 2)
	uc := NewIndexUC(source, &fakePreprocessor{tensor: &domain.Tensor{}}, emb, idx, store, &fakeProducer{}, fakeEncoder{}, embedderCfg(), nopLogger{})
	_, err := uc.Rebuild(context.Background())
	require.NoError(t, err)

	restored := index.New(nopLogger{}, 2)
	uc2 := NewIndexUC(source, &fakePreprocessor{tensor: &domain.Tensor{}}, emb, restored, store, &fakeProducer{}, fakeEncoder{}, embedderCfg(), nopLogger{})
	require.NoError(t, uc2.Restore(context.Background()))

	require.Equal(t, 1, restored.Snapshot().Size())
	vec, ok := restored.Snapshot().Vector("A")
	require.True(t, ok)
	assert.Equal(t, []float32{0.5, 0.5}, vec)
}
