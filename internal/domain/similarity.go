package domain

// SimilarityResult — один элемент выдачи визуального поиска.
// Score — косинусная близость запроса к вектору продукта.
type SimilarityResult struct {
	ProductCode string
	Score       float32
}
