package dto

type CartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type CartQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}
