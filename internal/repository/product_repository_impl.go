package repository

import (
	"context"
	"time"

	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateProductRepository(db *mongo.Database) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrProductNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrInternalServer
	}

	return product, nil
}

func (r *ProductRepositoryImpl) GetProductsBySeller(ctx context.Context, sellerID string, filter dto.Filter) (data []domain.Product, err error) {
	query := bson.D{{Key: "seller_id", Value: sellerID}}
	if filter.Category != "" {
		query = append(query, bson.E{Key: "category", Value: filter.Category})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit != 0 && filter.Page != 0 {
		opts = opts.SetSkip((filter.Page - 1) * filter.Limit).SetLimit(filter.Limit)
	}

	cursor, err := r.db.Collection("products").Find(ctx, query, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetAvailableProducts(ctx context.Context, filter dto.Filter) (data []domain.Product, err error) {
	query := bson.D{{Key: "stock", Value: bson.D{{Key: "$gt", Value: 0}}}}
	if filter.Category != "" {
		query = append(query, bson.E{Key: "category", Value: filter.Category})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit != 0 && filter.Page != 0 {
		opts = opts.SetSkip((filter.Page - 1) * filter.Limit).SetLimit(filter.Limit)
	}

	cursor, err := r.db.Collection("products").Find(ctx, query, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAvailableProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAvailableProducts").Msg("")
		return
	}

	return data, nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "stock", Value: data.Stock},
		{Key: "category", Value: data.Category},
		{Key: "image_url", Value: data.ImageURL},
		{Key: "updated_at", Value: time.Now().UnixMilli()},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

// DecrementStocks applies all stock decrements of one order as a single
// grouped write. Each update is guarded so stock can never go negative; a
// matched count short of the item count aborts the surrounding transaction.
func (r *ProductRepositoryImpl) DecrementStocks(ctx context.Context, items []domain.OrderItem) (err error) {
	timestamp := time.Now().UnixMilli()

	models := make([]mongo.WriteModel, 0, len(items))
	for _, item := range items {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.D{
				{Key: "_id", Value: item.ProductID},
				{Key: "stock", Value: bson.D{{Key: "$gte", Value: item.Quantity}}},
			}).
			SetUpdate(bson.D{
				{Key: "$inc", Value: bson.D{{Key: "stock", Value: -item.Quantity}}},
				{Key: "$set", Value: bson.D{{Key: "updated_at", Value: timestamp}}},
			}))
	}

	result, err := r.db.Collection("products").BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DecrementStocks").Msg("")
		return
	}

	if result.MatchedCount != int64(len(items)) {
		return errs.ErrConflict
	}

	return nil
}
