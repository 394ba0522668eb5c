package service

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/arkanadhi/lokapasar/internal/dto"
)

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (err error)
	Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error)
	GetProfile(ctx context.Context, externalID string) (resp dto.UserResponse, err error)
	UpdateProfile(ctx context.Context, externalID string, payload dto.UpdateProfileRequest) (err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, sellerID string, data dto.ProductRequest, image *multipart.FileHeader) (resp dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	GetSellerProducts(ctx context.Context, sellerID string, filter dto.Filter) (resp []dto.ProductResponse, err error)
	GetAvailableProducts(ctx context.Context, filter dto.Filter) (resp []dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, sellerID string, data dto.ProductRequest, image *multipart.FileHeader) (err error)
	DeleteProduct(ctx context.Context, sellerID string, id string) (err error)
	BulkDeleteProducts(ctx context.Context, sellerID string, ids []string) (resp dto.BulkDeleteResponse, err error)
	GetImage(ctx context.Context, id string, target io.Writer) (err error)
}

type CartService interface {
	AddProductToCart(ctx context.Context, userID string, data dto.CartRequest) (err error)
	SetCartItemQuantity(ctx context.Context, userID string, productID string, quantity int64) (err error)
	RemoveCartItem(ctx context.Context, userID string, productID string) (err error)
	ClearCart(ctx context.Context, userID string) (err error)
	GetCart(ctx context.Context, userID string) (resp dto.CartResponse, err error)
	GetCartItemCount(ctx context.Context, userID string) (count int64)
	PruneStaleCartItems()
}

type OrderService interface {
	Checkout(ctx context.Context, userID string) (resp dto.OrderResponse, err error)
	GetOrders(ctx context.Context, userID string, filter dto.Filter) (resp []dto.OrderResponse, err error)
	GetOrderByID(ctx context.Context, userID string, orderID string) (resp dto.OrderResponse, err error)
}
