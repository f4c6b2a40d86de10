package domain

import "time"

// Product описывает продукт каталога.
// Code — внешний артикул, по нему продукт связан с записью embedding-индекса.
type Product struct {
	ID         int64
	Code       string
	Name       string
	Price      int64 // Цена хранится в копейках
	CategoryID int64
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewProduct(code string, name string, price int64, categoryID int64) *Product {
	return &Product{
		Code:       code,
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
	}
}
