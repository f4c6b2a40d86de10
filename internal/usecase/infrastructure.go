package usecase

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
)

// EmbedderInfra — клиент sidecar-сервиса эмбеддингов.
// EmbedBatch возвращает результаты в порядке входных тензоров.
type EmbedderInfra interface {
	Embed(ctx context.Context, tensor *domain.Tensor) (*EmbedRes, error)
	EmbedBatch(ctx context.Context, tensors []*domain.Tensor) ([]EmbedRes, error)
}

// PreprocessInfra приводит изображение к тензору модели.
type PreprocessInfra interface {
	Run(query *domain.QueryImage, removeBackground bool) (*domain.Tensor, error)
}

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// EventEncoder сериализует события изменения каталога в payload для outbox/Kafka.
type EventEncoder interface {
	EncodeProductUpsert(eventID string, productCode string, imageKey string, modelVersion string) ([]byte, error)
	EncodeIndexRebuild(eventID string, report *domain.BuildReport) ([]byte, error)
}
