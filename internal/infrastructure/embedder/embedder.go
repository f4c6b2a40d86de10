package embedder

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/jitter"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Embedder — gRPC-клиент sidecar-сервиса извлечения эмбеддингов.
type Embedder struct {
	client        proto.EmbedderServiceClient
	maxConcurrent int
	maxRetries    int
	logger        logger.Logger
}

func New(client proto.EmbedderServiceClient, maxConcurrent int, maxRetries int, logger logger.Logger) *Embedder {
	return &Embedder{
		client:        client,
		maxConcurrent: maxConcurrent,
		maxRetries:    maxRetries,
		logger:        logger,
	}
}

// Embed извлекает эмбеддинг одного тензора с retry-логикой и экспоненциальной задержкой.
func (m *Embedder) Embed(ctx context.Context, tensor *domain.Tensor) (*usecase.EmbedRes, error) {
	const (
		op         = "Embedder.Embed"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	protoReq := &proto.EmbedRequest{Tensor: toProtoTensor(tensor)}

	for attempt := 0; attempt < m.maxRetries; attempt++ {
		res, err := m.client.Embed(ctx, protoReq)
		if err == nil {
			return usecase.NewEmbedRes(res.Vector, res.ModelVersion), nil
		}

		if !isRetryable(err) {
			return nil, e.Wrap(op, mapGRPCErr(err))
		}

		if attempt == m.maxRetries-1 {
			m.logger.Errorf(err, "%s: all %d attempts failed", op, m.maxRetries)
			return nil, e.Wrap(op, e.ErrModelUnavailable)
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		m.logger.Warnf("embedding failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, fmt.Errorf("unreachable"))
}

// EmbedBatch извлекает эмбеддинги батча тензоров параллельно с ограничением
// конкурентности. Порядок результатов совпадает с порядком входных тензоров.
func (m *Embedder) EmbedBatch(ctx context.Context, tensors []*domain.Tensor) ([]usecase.EmbedRes, error) {
	const op = "Embedder.EmbedBatch"

	if len(tensors) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyVectors)
	}

	vectors := make([]usecase.EmbedRes, len(tensors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.maxConcurrent)
	for n, tensor := range tensors {
		g.Go(func() error {
			res, err := m.Embed(gctx, tensor)
			if err != nil {
				return err
			}

			vectors[n] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, e.Wrap(op, err)
	}

	return vectors, nil
}

func toProtoTensor(tensor *domain.Tensor) *proto.ImageTensor {
	return &proto.ImageTensor{
		Data:     tensor.Data,
		Height:   int32(tensor.Height),
		Width:    int32(tensor.Width),
		Channels: int32(tensor.Channels),
	}
}

// isRetryable отделяет временные сбои сервиса модели от ошибок запроса.
func isRetryable(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return true
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}

func mapGRPCErr(err error) error {
	if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
		return e.ErrStatusBadRequest
	}

	return err
}
