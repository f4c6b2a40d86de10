package qdrant

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

// EmbeddingRepo репозиторий для работы с embedding-векторами в Qdrant
type EmbeddingRepo struct {
	client *qdrant.Client
	cfg    *cfg.QdrantCfg
}

func NewEmbeddingRepo(client *qdrant.Client, cfg *cfg.QdrantCfg) *EmbeddingRepo {
	return &EmbeddingRepo{
		client: client,
		cfg:    cfg,
	}
}

// Upsert сохраняет или обновляет embedding-векторы в указанной коллекции Qdrant.
func (q *EmbeddingRepo) Upsert(ctx context.Context, vectors []domain.Embedding) error {
	reqVectors := make([]*qdrant.PointStruct, 0, len(vectors))
	for _, vector := range vectors {
		reqVectors = append(reqVectors, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(vector.ID),
			Vectors: qdrant.NewVectors(vector.Vector...),
			Payload: qdrant.NewValueMap(vector.Payload),
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Points:         reqVectors,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Search возвращает ближайшие к запросу векторы коллекции вместе с артикулами
// продуктов из payload. Точки без артикула пропускаются.
func (q *EmbeddingRepo) Search(ctx context.Context, vector []float32, limit uint64) ([]domain.SimilarityResult, error) {
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Query: &qdrant.Query{
			Variant: &qdrant.Query_Nearest{
				Nearest: &qdrant.VectorInput{
					Variant: &qdrant.VectorInput_Dense{
						Dense: &qdrant.DenseVector{Data: vector},
					},
				},
			},
		},
		Limit:       &limit,
		WithPayload: qdrant.NewWithPayloadInclude("product_code"),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	results := make([]domain.SimilarityResult, 0, len(points))
	for _, point := range points {
		codeValue, ok := point.Payload["product_code"]
		if !ok {
			continue
		}

		code := codeValue.GetStringValue()
		if code == "" {
			continue
		}

		results = append(results, domain.SimilarityResult{
			ProductCode: code,
			Score:       point.Score,
		})
	}

	return results, nil
}
