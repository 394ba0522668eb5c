package service

import (
	"context"
	"time"

	"github.com/arkanadhi/lokapasar/config"
	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/internal/repository"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	config      config.Config
}

func CreateCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, config config.Config) CartService {
	return &CartServiceImpl{cartRepo: cartRepo, productRepo: productRepo, config: config}
}

// AddProductToCart merges into an existing line when present: the stored
// quantity becomes existing+requested, validated against current stock.
func (s *CartServiceImpl) AddProductToCart(ctx context.Context, userID string, data dto.CartRequest) (err error) {
	if data.Quantity <= 0 {
		return errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, data.ProductID)
	if err != nil {
		return
	}

	existing, err := s.cartRepo.GetCartItemByProduct(ctx, userID, product.ID)
	if err != nil && err != errs.ErrNotFound {
		return
	}

	if err == nil {
		newQuantity := existing.Quantity + data.Quantity
		if newQuantity > product.Stock {
			return &errs.InsufficientStockError{
				ProductName: product.Name,
				Requested:   newQuantity,
				Available:   product.Stock,
			}
		}

		return s.cartRepo.SetCartItemQuantity(ctx, userID, product.ID, newQuantity)
	}

	if data.Quantity > product.Stock {
		return &errs.InsufficientStockError{
			ProductName: product.Name,
			Requested:   data.Quantity,
			Available:   product.Stock,
		}
	}

	item := domain.CartItem{
		UserID:          userID,
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductImageURL: product.ImageURL,
		UnitPrice:       product.Price,
		Quantity:        data.Quantity,
		AddedAt:         time.Now().UnixMilli(),
	}

	return s.cartRepo.AddCartItem(ctx, item)
}

// SetCartItemQuantity deletes the line when the new quantity drops to zero or
// below; a quantity can never be stored as zero or negative.
func (s *CartServiceImpl) SetCartItemQuantity(ctx context.Context, userID string, productID string, quantity int64) (err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return errs.ErrProductNotFound
	}

	if quantity <= 0 {
		return s.cartRepo.DeleteCartItem(ctx, userID, id)
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	if quantity > product.Stock {
		return &errs.InsufficientStockError{
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}

	return s.cartRepo.SetCartItemQuantity(ctx, userID, id, quantity)
}

func (s *CartServiceImpl) RemoveCartItem(ctx context.Context, userID string, productID string) (err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return errs.ErrProductNotFound
	}

	return s.cartRepo.DeleteCartItem(ctx, userID, id)
}

func (s *CartServiceImpl) ClearCart(ctx context.Context, userID string) (err error) {
	return s.cartRepo.ClearCart(ctx, userID)
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID string) (resp dto.CartResponse, err error) {
	items, err := s.cartRepo.GetCartItems(ctx, userID)
	if err != nil {
		return
	}

	resp.Items = make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		subtotal := item.UnitPrice * float64(item.Quantity)
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ProductID:       item.ProductID.Hex(),
			ProductName:     item.ProductName,
			ProductImageURL: item.ProductImageURL,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			Subtotal:        subtotal,
			AddedAt:         item.AddedAt,
		})
		resp.Total += subtotal
	}

	return resp, nil
}

// GetCartItemCount is display-only: a failed lookup degrades to zero instead
// of surfacing an error.
func (s *CartServiceImpl) GetCartItemCount(ctx context.Context, userID string) (count int64) {
	count, err := s.cartRepo.CountCartItems(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetCartItemCount").Msg("")
		return 0
	}

	return count
}

func (s *CartServiceImpl) PruneStaleCartItems() {
	cutoff := time.Now().AddDate(0, 0, -s.config.CartRetentionDays).UnixMilli()

	deleted, err := s.cartRepo.DeleteStaleItems(context.Background(), cutoff)
	if err != nil {
		log.Error().Err(err).Str("component", "PruneStaleCartItems").Msg("")
		return
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Str("component", "PruneStaleCartItems").Msg("pruned stale cart items")
	}
}
