package domain

// CatalogEntry — запись embedding-индекса: артикул продукта и его вектор.
// Вектор принадлежит индексу, вызывающий код не должен его изменять.
type CatalogEntry struct {
	ProductCode string
	Vector      []float32
}

func NewCatalogEntry(productCode string, vector []float32) *CatalogEntry {
	return &CatalogEntry{
		ProductCode: productCode,
		Vector:      vector,
	}
}
