package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem holds a denormalized snapshot of the product taken at add time.
// Price shown in the cart is the snapshot; checkout always re-reads the
// current product price.
type CartItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	ProductID       primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName     string             `bson:"product_name" json:"product_name"`
	ProductImageURL string             `bson:"product_image_url" json:"product_image_url"`
	UnitPrice       float64            `bson:"unit_price" json:"unit_price"`
	Quantity        int64              `bson:"quantity" json:"quantity"`
	AddedAt         int64              `bson:"added_at" json:"added_at"`
}
