package repository

import (
	"context"
	"io"

	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (data domain.User, err error)
	GetUserByExternalID(ctx context.Context, externalID string) (data domain.User, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProductsBySeller(ctx context.Context, sellerID string, filter dto.Filter) (data []domain.Product, err error)
	GetAvailableProducts(ctx context.Context, filter dto.Filter) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	DecrementStocks(ctx context.Context, items []domain.OrderItem) (err error)
}

type CartRepository interface {
	GetCartItems(ctx context.Context, userID string) (data []domain.CartItem, err error)
	GetCartItemByProduct(ctx context.Context, userID string, productID primitive.ObjectID) (data domain.CartItem, err error)
	AddCartItem(ctx context.Context, data domain.CartItem) (err error)
	SetCartItemQuantity(ctx context.Context, userID string, productID primitive.ObjectID, quantity int64) (err error)
	DeleteCartItem(ctx context.Context, userID string, productID primitive.ObjectID) (err error)
	ClearCart(ctx context.Context, userID string) (err error)
	CountCartItems(ctx context.Context, userID string) (count int64, err error)
	DeleteStaleItems(ctx context.Context, olderThan int64) (deleted int64, err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrdersByUser(ctx context.Context, userID string, filter dto.Filter) (data []domain.Order, err error)
	GetOrderByID(ctx context.Context, id string) (data domain.Order, err error)
	HandleTrx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type ImageRepository interface {
	UploadImage(ctx context.Context, filename string, source io.Reader) (url string, err error)
	DownloadImage(ctx context.Context, id string, target io.Writer) (err error)
	DeleteImage(ctx context.Context, url string) (err error)
}
