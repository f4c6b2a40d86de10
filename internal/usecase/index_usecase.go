package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// IndexUseCase управляет жизненным циклом embedding-индекса: восстановление
// при старте, полная пересборка из каталога и статус для админки.
type IndexUseCase struct {
	source       CatalogImageSource
	preprocessor PreprocessInfra
	embedder     EmbedderInfra
	idx          *index.Index
	snapshots    SnapshotRepository
	producer     MessageProducer
	encoder      EventEncoder
	embedderCfg  *cfg.EmbedderCfg
	logger       logger.Logger

	// Одна пересборка за раз. Поиск при этом не блокируется:
	// до Replace он видит прежний снапшот.
	rebuildMu sync.Mutex

	versionMu        sync.RWMutex
	lastModelVersion string
}

func NewIndexUC(
	source CatalogImageSource,
	preprocessor PreprocessInfra,
	embedder EmbedderInfra,
	idx *index.Index,
	snapshots SnapshotRepository,
	producer MessageProducer,
	encoder EventEncoder,
	embedderCfg *cfg.EmbedderCfg,
	logger logger.Logger,
) *IndexUseCase {
	return &IndexUseCase{
		source:       source,
		preprocessor: preprocessor,
		embedder:     embedder,
		idx:          idx,
		snapshots:    snapshots,
		producer:     producer,
		encoder:      encoder,
		embedderCfg:  embedderCfg,
		logger:       logger,
	}
}

// Restore загружает последний сохраненный снапшот индекса при старте сервиса.
// Отсутствие снапшота не ошибка: сервис стартует с пустым индексом.
func (i *IndexUseCase) Restore(ctx context.Context) error {
	const op = "IndexUseCase.Restore"

	data, err := i.snapshots.Load(ctx)
	if err != nil {
		if errors.Is(err, e.ErrSnapshotNotFound) {
			i.logger.Infof("%s: no stored snapshot, starting with empty index", op)
			return nil
		}

		return e.Wrap(op, err)
	}

	snap, err := index.Decode(data)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := i.idx.Replace(snap); err != nil {
		return e.Wrap(op, err)
	}

	i.logger.Infof("%s: restored %d entries (dim=%d)", op, snap.Size(), snap.Dim())

	return nil
}

// Rebuild полностью пересобирает индекс из изображений каталога в MinIO.
// Продукты, чьи изображения не удалось обработать, попадают в Skipped и не
// валят пересборку целиком.
func (i *IndexUseCase) Rebuild(ctx context.Context) (*domain.BuildReport, error) {
	const op = "IndexUseCase.Rebuild"

	i.rebuildMu.Lock()
	defer i.rebuildMu.Unlock()

	started := time.Now()

	catalog, err := i.source.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	i.logger.Infof("%s: rebuilding from %d catalog images", op, len(catalog))

	var (
		skippedMu sync.Mutex
		skipped   []string
	)
	skip := func(code string, reason error) {
		skippedMu.Lock()
		defer skippedMu.Unlock()
		skipped = append(skipped, code)
		i.logger.Warnf("%s: skipping %s: %v", op, code, reason)
	}

	builder := index.NewBuilder(i.idx.Dim())
	modelVersion := ""

	// Каталог идет батчами: загрузка и препроцессинг параллельны внутри
	// батча, эмбеддинг следует сразу за ним. В памяти одновременно живут
	// тензоры одного батча, а не всего каталога.
	for start := 0; start < len(catalog); start += i.embedderCfg.BatchSize {
		batch := catalog[start:min(start+i.embedderCfg.BatchSize, len(catalog))]

		tensors := make([]*domain.Tensor, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(i.embedderCfg.MaxConcurrent)
		for n, img := range batch {
			g.Go(func() error {
				data, err := i.source.Get(gctx, img.ObjectKey)
				if err != nil {
					skip(img.ProductCode, err)
					return nil
				}

				tensor, err := i.preprocessor.Run(domain.NewQueryImage(data, "", img.ObjectKey), true)
				if err != nil {
					skip(img.ProductCode, err)
					return nil
				}

				tensors[n] = tensor
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, e.Wrap(op, err)
		}

		batchTensors := make([]*domain.Tensor, 0, len(batch))
		batchCodes := make([]string, 0, len(batch))
		for n, img := range batch {
			if tensors[n] == nil {
				continue
			}
			batchTensors = append(batchTensors, tensors[n])
			batchCodes = append(batchCodes, img.ProductCode)
		}
		if len(batchTensors) == 0 {
			continue
		}

		vectors, err := i.embedder.EmbedBatch(ctx, batchTensors)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if len(vectors) != len(batchTensors) {
			return nil, e.Wrap(op, e.ErrImageVectorMismatch)
		}

		for n, vec := range vectors {
			if err := builder.Add(batchCodes[n], vec.Vector); err != nil {
				skip(batchCodes[n], err)
				continue
			}
			modelVersion = vec.ModelVersion
		}
	}

	snap := builder.Snapshot()
	if err := i.idx.Replace(snap); err != nil {
		return nil, e.Wrap(op, err)
	}

	i.versionMu.Lock()
	i.lastModelVersion = modelVersion
	i.versionMu.Unlock()

	report := domain.NewBuildReport(snap.Size(), skipped, modelVersion, time.Since(started).Milliseconds())

	// Персист снапшота и событие пересборки не должны ронять уже
	// примененный Replace: индекс живет в памяти, ошибки здесь деградация.
	if err := i.snapshots.Save(ctx, index.Encode(snap)); err != nil {
		i.logger.Errorf(err, "%s: failed to persist snapshot", op)
	}

	i.publishRebuildEvent(ctx, report)

	i.logger.Infof("%s: completed, indexed=%d skipped=%d took=%dms",
		op, report.Indexed, len(report.Skipped), report.TookMs)

	return report, nil
}

// Status возвращает текущее состояние индекса.
func (i *IndexUseCase) Status() *IndexStatusRes {
	snap := i.idx.Snapshot()

	i.versionMu.RLock()
	version := i.lastModelVersion
	i.versionMu.RUnlock()

	return NewIndexStatusRes(snap.Size(), snap.Dim(), version)
}

func (i *IndexUseCase) publishRebuildEvent(ctx context.Context, report *domain.BuildReport) {
	const op = "IndexUseCase.publishRebuildEvent"

	eventID := uuid.NewString()

	payload, err := i.encoder.EncodeIndexRebuild(eventID, report)
	if err != nil {
		i.logger.Errorf(err, "%s: failed to encode event", op)
		return
	}

	if err := i.producer.WriteRawMessage(ctx, NewWriteRawMessageReq(eventID, payload)); err != nil {
		i.logger.Errorf(err, "%s: failed to publish event", op)
	}
}
