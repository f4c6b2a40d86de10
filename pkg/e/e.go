package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки целостности данных (не должны доходить до конечного пользователя)
	ErrDegenerateEmbedding  = fmt.Errorf("degenerate zero-norm embedding")
	ErrDimensionMismatch    = fmt.Errorf("embedding dimension mismatch")
	ErrVectorEmbeddingEmpty = fmt.Errorf("vector embedding is empty")
	ErrEmptyVectors         = fmt.Errorf("embedder returned no vectors")
	ErrImageVectorMismatch  = fmt.Errorf("images and vectors count mismatch")
	ErrSnapshotCorrupted    = fmt.Errorf("index snapshot corrupted")
	ErrSnapshotNotFound     = fmt.Errorf("index snapshot not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrNoImage              = fmt.Errorf("no image file provided")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrDecodeFailed         = fmt.Errorf("unrecognized or corrupt image")
	ErrInvalidTopK          = fmt.Errorf("topK must be at least 1")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrProductCodeRequired  = fmt.Errorf("product code is required")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrNoProducts           = fmt.Errorf("no product codes provided")

	// 5xx
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrModelUnavailable    = fmt.Errorf("embedding model unavailable")
	ErrSearchTimeout       = fmt.Errorf("search timed out")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
