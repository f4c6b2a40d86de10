package grpc

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/google/uuid"
)

type SearchService struct {
	proto.UnimplementedSearchServiceServer
	searchUC usecase.SearchUC
	logger   logger.Logger
}

func NewSearchService(searchUC usecase.SearchUC, logger logger.Logger) *SearchService {
	return &SearchService{searchUC: searchUC, logger: logger}
}

// SearchByImage выполняет визуальный поиск по байтам изображения.
// top_k = 0 означает размер выдачи по умолчанию.
func (g *SearchService) SearchByImage(ctx context.Context, req *proto.SearchByImageRequest) (*proto.SearchByImageResponse, error) {
	const op = "grpc.SearchByImage"

	correlationID := uuid.NewString()
	image := domain.NewQueryImage(req.Image, "", correlationID)

	res, err := g.searchUC.Search(ctx, usecase.NewSearchReq(image, req.RemoveBackground, int(req.TopK)))
	if err != nil {
		if isInputError(err) {
			g.logger.Warnf("%s: %v", op, err)
		} else {
			g.logger.Errorf(e.Wrap(op, err), "%s", op)
		}

		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.SearchByImageResponse{
		Results: toArrGRPCResult(res.Results),
		TookMs:  res.TookMs,
	}, nil
}

func toArrGRPCResult(results []domain.SimilarityResult) []*proto.SimilarityResult {
	res := make([]*proto.SimilarityResult, len(results))
	for i, r := range results {
		res[i] = &proto.SimilarityResult{
			ProductCode: r.ProductCode,
			Score:       r.Score,
		}
	}

	return res
}
