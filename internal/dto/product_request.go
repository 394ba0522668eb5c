package dto

type ProductRequest struct {
	ID          string  `json:"id" form:"id"`
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	Stock       int64   `json:"stock" form:"stock"`
	Category    string  `json:"category" form:"category"`
}

type BulkDeleteRequest struct {
	ProductIDs []string `json:"product_ids"`
}
