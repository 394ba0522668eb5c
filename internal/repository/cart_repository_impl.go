package repository

import (
	"context"

	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepositoryImpl struct {
	db *mongo.Database
}

func CreateCartRepository(db *mongo.Database) CartRepository {
	return &CartRepositoryImpl{db: db}
}

// GetCartItems returns the lines sorted by added_at ascending so downstream
// order lines follow cart insertion order. Callers must not rely on a
// specific ordering across sessions beyond that.
func (r *CartRepositoryImpl) GetCartItems(ctx context.Context, userID string) (data []domain.CartItem, err error) {
	filter := bson.D{{Key: "user_id", Value: userID}}
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}})

	cursor, err := r.db.Collection("cart_items").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return
	}

	return data, nil
}

func (r *CartRepositoryImpl) GetCartItemByProduct(ctx context.Context, userID string, productID primitive.ObjectID) (data domain.CartItem, err error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "product_id", Value: productID},
	}

	err = r.db.Collection("cart_items").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItemByProduct").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) AddCartItem(ctx context.Context, data domain.CartItem) (err error) {
	_, err = r.db.Collection("cart_items").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCartItem").Msg("")
		return
	}

	return nil
}

func (r *CartRepositoryImpl) SetCartItemQuantity(ctx context.Context, userID string, productID primitive.ObjectID, quantity int64) (err error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "product_id", Value: productID},
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}}

	result, err := r.db.Collection("cart_items").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetCartItemQuantity").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *CartRepositoryImpl) DeleteCartItem(ctx context.Context, userID string, productID primitive.ObjectID) (err error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "product_id", Value: productID},
	}

	_, err = r.db.Collection("cart_items").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCartItem").Msg("")
		return
	}

	return nil
}

func (r *CartRepositoryImpl) ClearCart(ctx context.Context, userID string) (err error) {
	filter := bson.D{{Key: "user_id", Value: userID}}

	_, err = r.db.Collection("cart_items").DeleteMany(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ClearCart").Msg("")
		return
	}

	return nil
}

func (r *CartRepositoryImpl) CountCartItems(ctx context.Context, userID string) (count int64, err error) {
	filter := bson.D{{Key: "user_id", Value: userID}}

	count, err = r.db.Collection("cart_items").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountCartItems").Msg("")
		return 0, err
	}

	return
}

func (r *CartRepositoryImpl) DeleteStaleItems(ctx context.Context, olderThan int64) (deleted int64, err error) {
	filter := bson.D{{Key: "added_at", Value: bson.D{{Key: "$lt", Value: olderThan}}}}

	result, err := r.db.Collection("cart_items").DeleteMany(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteStaleItems").Msg("")
		return 0, err
	}

	return result.DeletedCount, nil
}
