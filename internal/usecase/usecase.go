package usecase

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
)

type SearchUC interface {
	Search(ctx context.Context, req *SearchReq) (*SearchRes, error)
}

type ProductUC interface {
	RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*OutboxEvent, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}

type IndexAdminUC interface {
	Rebuild(ctx context.Context) (*domain.BuildReport, error)
	Status() *IndexStatusRes
}
