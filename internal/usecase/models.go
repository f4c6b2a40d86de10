package usecase

import (
	"time"

	"github.com/DRSN-tech/visual-search/internal/domain"
)

// SEARCH USECASE

// SearchReq — запрос визуального поиска.
type SearchReq struct {
	Image            *domain.QueryImage
	RemoveBackground bool
	TopK             int
}

// SearchRes — результат визуального поиска. TookMs покрывает путь
// от начала препроцессинга до конца ранжирования.
type SearchRes struct {
	Results []domain.SimilarityResult
	TookMs  int64
}

// IndexStatusRes — текущее состояние embedding-индекса.
type IndexStatusRes struct {
	Size         int
	Dim          int
	ModelVersion string
}

// CATALOG USECASE

// AddNewProductReq — запрос на добавление нового продукта.
type AddNewProductReq struct {
	Code         string
	Name         string
	CategoryName string
	Price        int64
	Images       []ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// GetProductsReq запрос информации о продуктах по их артикулам.
type GetProductsReq struct {
	Codes []string
}

// GetProductsRes — ответ с данными запрошенных продуктов.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []string
}

// ProductInfo — DTO с информацией о продукте для внешнего использования.
type ProductInfo struct {
	Code         string
	Name         string
	CategoryName string
	Price        int64
}

// INFRASTRUCTURE

// EmbedRes — эмбеддинг одного изображения.
type EmbedRes struct {
	Vector       []float32
	ModelVersion string
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// UploadImagesReq — запрос на загрузку изображений продукта.
type UploadImagesReq struct {
	Code   string
	Images []ProductImage
}

// WriteRawMessageReq — готовый payload для публикации в Kafka.
type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// CatalogImage — изображение каталога в объектном хранилище.
type CatalogImage struct {
	ProductCode string
	ObjectKey   string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductUpserted OutboxEventType = "product_upserted"
	IndexRebuilt    OutboxEventType = "index_rebuilt"
)

// OutboxEvent — запись outbox-таблицы для гарантированной доставки в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductCode string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// REPOSITORIES

type UpsertProductRes struct {
	Product   *domain.Product
	NoChanges bool
}

// MAPPERS

func NewSearchReq(image *domain.QueryImage, removeBackground bool, topK int) *SearchReq {
	return &SearchReq{
		Image:            image,
		RemoveBackground: removeBackground,
		TopK:             topK,
	}
}

func NewSearchRes(results []domain.SimilarityResult, tookMs int64) *SearchRes {
	return &SearchRes{
		Results: results,
		TookMs:  tookMs,
	}
}

func NewIndexStatusRes(size int, dim int, modelVersion string) *IndexStatusRes {
	return &IndexStatusRes{
		Size:         size,
		Dim:          dim,
		ModelVersion: modelVersion,
	}
}

func NewUpsertProductRes(product *domain.Product, noChanges bool) *UpsertProductRes {
	return &UpsertProductRes{
		Product:   product,
		NoChanges: noChanges,
	}
}

func NewProductInfo(code string, name string, category string, price int64) ProductInfo {
	return ProductInfo{
		Code:         code,
		Name:         name,
		CategoryName: category,
		Price:        price,
	}
}

func NewEmbedRes(vector []float32, modelVersion string) *EmbedRes {
	return &EmbedRes{
		Vector:       vector,
		ModelVersion: modelVersion,
	}
}

func NewUploadImagesReq(code string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Code:   code,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewAddNewProductReq(code string, name string, category string, price int64, images []ProductImage) *AddNewProductReq {
	return &AddNewProductReq{
		Code:         code,
		Name:         name,
		CategoryName: category,
		Price:        price,
		Images:       images,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []string) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewGetProductsReq(codes []string) *GetProductsReq {
	return &GetProductsReq{codes}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, productCode string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		ProductCode: productCode,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now().UTC(),
	}
}

func NewCatalogImage(productCode string, objectKey string) CatalogImage {
	return CatalogImage{
		ProductCode: productCode,
		ObjectKey:   objectKey,
	}
}
