package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CatalogUseCase реализует бизнес-логику каталога: регистрацию продуктов
// с индексацией эмбеддинга и выдачу карточек по артикулам.
type CatalogUseCase struct {
	productRepo   ProductRepository
	categoryRepo  CategoryRepository
	outboxRepo    OutboxRepository
	dbPool        transaction.Transactional
	preprocessor  PreprocessInfra
	embedder      EmbedderInfra
	imagesInfra   ImagesInfra
	embeddingRepo EmbeddingRepository
	idx           *index.Index
	encoder       EventEncoder
	cacheRepo     CacheRepository
	logger        logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	preprocessor PreprocessInfra,
	embedder EmbedderInfra,
	imagesInfra ImagesInfra,
	embeddingRepo EmbeddingRepository,
	idx *index.Index,
	encoder EventEncoder,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		outboxRepo:    outboxRepo,
		dbPool:        dbPool,
		preprocessor:  preprocessor,
		embedder:      embedder,
		imagesInfra:   imagesInfra,
		embeddingRepo: embeddingRepo,
		idx:           idx,
		encoder:       encoder,
		cacheRepo:     cacheRepo,
		logger:        logger,
	}
}

// RegisterNewProduct обрабатывает добавление нового продукта: изображения
// уходят в MinIO, эмбеддинг первого изображения попадает в индекс и Qdrant,
// событие изменения каталога пишется в outbox в одной транзакции с продуктом.
func (p *CatalogUseCase) RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*OutboxEvent, error) {
	const op = "CatalogUseCase.RegisterNewProduct"

	var err error
	err = p.validateProduct(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженных изображений
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && imagesRes != nil {
				p.logger.Warnf(
					"Cleaning up orphaned images after transaction failure. product_code: %s, error: %v",
					req.Code,
					e.Wrap(op, err),
				)

				p.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// идемпотентное создание категории
	category, err := p.createCategory(ctx, req.CategoryName)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// идемпотентное создание продукта по артикулу
	upserted, err := p.productRepo.Upsert(ctx, domain.NewProduct(req.Code, req.Name, req.Price, category.ID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Эмбеддинги всех изображений продукта
	vectors, err := p.getVectors(ctx, req.Images)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Сохранение изображений в MinIO
	imagesRes, err = p.uploadImages(ctx, req.Code, req.Images)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	uploaded = true

	// Сохранение векторов с дополнительной информацией (S3 key, артикул, Model Version)
	err = p.upsertEmbeddings(ctx, req.Code, imagesRes.ImagesKeys, vectors)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Событие в outbox в той же транзакции, что и продукт
	event, err := p.createOutboxEvent(ctx, req.Code, imagesRes.ImagesKeys[0], vectors[0].ModelVersion)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Коммит изменений в бд
	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Публикация в индекс только после коммита: поиск не должен находить
	// продукт, которого нет в каталоге.
	if err := p.idx.Upsert(req.Code, vectors[0].Vector); err != nil {
		p.logger.Errorf(err, "%s: index upsert failed for %s", op, req.Code)
	}

	// Удаление из кэша старых данных товара
	if err := p.cacheRepo.DeleteProducts(ctx, []string{req.Code}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	if upserted.NoChanges {
		p.logger.Debugf("%s: product %s unchanged", op, req.Code)
	}

	return event, nil
}

// GetProductsInfo возвращает информацию о продуктах по их артикулам.
func (p *CatalogUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "CatalogUseCase.GetProductsInfo"

	// Валидация
	if len(req.Codes) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	// Поиск продуктов в кэше
	cacheProductsMap, err := p.cacheRepo.GetProducts(ctx, req.Codes)
	var nonCacheable []string
	if err != nil {
		nonCacheable = append(nonCacheable, req.Codes...)
	} else {
		for _, code := range req.Codes {
			if _, ok := cacheProductsMap[code]; !ok {
				nonCacheable = append(nonCacheable, code)
			}
		}
	}

	// Получение продуктов из БД
	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = p.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление продуктов в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := p.cacheRepo.SetProducts(bgCtx, productsInfoFromDB); err != nil {
				p.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[string]ProductInfo, len(productsInfoFromDB))
	for _, productInfo := range productsInfoFromDB {
		dbProductsMap[productInfo.Code] = productInfo
	}

	// Формирование результата в порядке запрошенных артикулов
	result := make([]ProductInfo, 0, len(req.Codes))
	notFoundProducts := make([]string, 0)
	for _, code := range req.Codes {
		if pr, ok := cacheProductsMap[code]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[code]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, code)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// getVectors прогоняет изображения через препроцессинг и батч-эмбеддинг.
func (p *CatalogUseCase) getVectors(ctx context.Context, images []ProductImage) ([]EmbedRes, error) {
	tensors := make([]*domain.Tensor, 0, len(images))
	for _, img := range images {
		tensor, err := p.preprocessor.Run(domain.NewQueryImage(img.Data, img.MimeType, img.Name), true)
		if err != nil {
			return nil, err
		}
		tensors = append(tensors, tensor)
	}

	vectors, err := p.embedder.EmbedBatch(ctx, tensors)
	if err != nil {
		return nil, err
	}

	if len(vectors) == 0 {
		return nil, e.ErrEmptyVectors
	}

	return vectors, nil
}

// createCategory идемпотентно создаёт категорию.
func (p *CatalogUseCase) createCategory(ctx context.Context, categoryName string) (*domain.Category, error) {
	return p.categoryRepo.Create(ctx, domain.NewCategory(categoryName))
}

// uploadImages сохраняет изображения продукта в MinIO.
func (p *CatalogUseCase) uploadImages(ctx context.Context, code string, images []ProductImage) (*UploadImagesRes, error) {
	return p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(code, images))
}

// upsertEmbeddings сохраняет векторы изображений в Qdrant с привязкой к продукту и объектам MinIO.
func (p *CatalogUseCase) upsertEmbeddings(ctx context.Context, productCode string, imageKeys []string, vectors []EmbedRes) error {
	if len(imageKeys) != len(vectors) {
		return e.ErrImageVectorMismatch
	}

	embeddings := make([]domain.Embedding, 0, len(imageKeys))
	for i, key := range imageKeys {
		if len(vectors[i].Vector) == 0 {
			return e.ErrVectorEmbeddingEmpty
		}
		payload := domain.NewPayload(productCode, key, vectors[i].ModelVersion)
		embeddings = append(embeddings, *domain.NewEmbedding(uuid.NewString(), vectors[i].Vector, payload))
	}

	return p.embeddingRepo.Upsert(ctx, embeddings)
}

// createOutboxEvent сериализует событие изменения каталога и пишет его в outbox.
func (p *CatalogUseCase) createOutboxEvent(ctx context.Context, productCode string, imageKey string, modelVersion string) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := p.encoder.EncodeProductUpsert(eventID, productCode, imageKey, modelVersion)
	if err != nil {
		return nil, err
	}

	return p.outboxRepo.Create(ctx, NewOutboxEvent(eventID, ProductUpserted, productCode, payload))
}

// validateProduct проверяет корректность входных данных запроса на добавление продукта.
func (p *CatalogUseCase) validateProduct(req *AddNewProductReq) error {
	if strings.TrimSpace(req.Code) == "" {
		return e.ErrProductCodeRequired
	}

	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if len(req.Images) == 0 {
		return e.ErrNoImages
	}

	return nil
}
