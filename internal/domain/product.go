package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	CategoryElectronics = "electronics"
	CategoryFashion     = "fashion"
	CategoryFood        = "food"
	CategoryBeauty      = "beauty"
	CategorySports      = "sports"
	CategoryBooks       = "books"
	CategoryToys        = "toys"
	CategoryOther       = "other"
)

var productCategories = map[string]struct{}{
	CategoryElectronics: {},
	CategoryFashion:     {},
	CategoryFood:        {},
	CategoryBeauty:      {},
	CategorySports:      {},
	CategoryBooks:       {},
	CategoryToys:        {},
	CategoryOther:       {},
}

func IsValidCategory(category string) bool {
	_, ok := productCategories[category]
	return ok
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID    string             `bson:"seller_id" json:"seller_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int64              `bson:"stock" json:"stock"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	CreatedAt   int64              `bson:"created_at" json:"created_at"`
	UpdatedAt   int64              `bson:"updated_at" json:"updated_at"`
}
