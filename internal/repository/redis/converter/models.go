package converter

type ProductInfoRedisModel struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	Price        int64  `json:"price"`
}
