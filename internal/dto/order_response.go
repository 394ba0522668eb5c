package dto

type OrderItemResponse struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductImageURL string  `json:"product_image_url"`
	Quantity        int64   `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	Subtotal        float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`
	Status      string              `json:"status"`
	CreatedAt   int64               `json:"created_at"`
}
