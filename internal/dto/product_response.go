package dto

type ProductResponse struct {
	ID          string  `json:"id"`
	SellerID    string  `json:"seller_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

type BulkDeleteResponse struct {
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
}
