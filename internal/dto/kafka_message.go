package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type KafkaOrderPayload struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	UserID      string  `json:"user_id"`
	TotalAmount float64 `json:"total_amount"`
}
