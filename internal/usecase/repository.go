package usecase

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error)
	GetProductsInfo(ctx context.Context, codes []string) ([]ProductInfo, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type EmbeddingRepository interface {
	Upsert(ctx context.Context, vectors []domain.Embedding) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, codes []string) (map[string]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, codes []string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

// SnapshotRepository хранит бинарные снапшоты embedding-индекса.
type SnapshotRepository interface {
	Save(ctx context.Context, data []byte) error
	// Load возвращает e.ErrSnapshotNotFound, если снапшот еще не сохранялся.
	Load(ctx context.Context) ([]byte, error)
}

// CatalogImageSource перечисляет изображения каталога для пересборки индекса.
type CatalogImageSource interface {
	List(ctx context.Context) ([]CatalogImage, error)
	Get(ctx context.Context, objectKey string) ([]byte, error)
}
