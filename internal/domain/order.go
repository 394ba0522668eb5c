package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is immutable once written. Its items snapshot name, image and unit
// price at purchase time so later product edits or deletions never change
// recorded history.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber string             `bson:"order_number" json:"order_number"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Items       []OrderItem        `bson:"items" json:"items"`
	TotalAmount float64            `bson:"total_amount" json:"total_amount"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   int64              `bson:"created_at" json:"created_at"`
}

type OrderItem struct {
	ProductID       primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName     string             `bson:"product_name" json:"product_name"`
	ProductImageURL string             `bson:"product_image_url" json:"product_image_url"`
	Quantity        int64              `bson:"quantity" json:"quantity"`
	UnitPrice       float64            `bson:"unit_price" json:"unit_price"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
}
