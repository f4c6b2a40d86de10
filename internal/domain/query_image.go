package domain

// QueryImage — изображение-запрос. Живет только в рамках одного запроса,
// на диск не пишется. CorrelationID используется исключительно для логов.
type QueryImage struct {
	Data          []byte
	MimeType      string
	CorrelationID string
}

func NewQueryImage(data []byte, mimeType string, correlationID string) *QueryImage {
	return &QueryImage{
		Data:          data,
		MimeType:      mimeType,
		CorrelationID: correlationID,
	}
}
