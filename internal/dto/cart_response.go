package dto

type CartItemResponse struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductImageURL string  `json:"product_image_url"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        int64   `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
	AddedAt         int64   `json:"added_at"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}
