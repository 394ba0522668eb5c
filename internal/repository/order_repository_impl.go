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

type OrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateOrderRepository(db *mongo.Database) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	data.CreatedAt = time.Now().UnixMilli()

	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *OrderRepositoryImpl) GetOrdersByUser(ctx context.Context, userID string, filter dto.Filter) (data []domain.Order, err error) {
	query := bson.D{{Key: "user_id", Value: userID}}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit != 0 && filter.Page != 0 {
		opts = opts.SetSkip((filter.Page - 1) * filter.Limit).SetLimit(filter.Limit)
	}

	cursor, err := r.db.Collection("orders").Find(ctx, query, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return
	}

	return data, nil
}

func (r *OrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (data domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return data, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: orderID}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

// HandleTrx runs fn inside a mongo session transaction. The session context
// satisfies context.Context, so every repository call made with txCtx joins
// the same transaction.
func (r *OrderRepositoryImpl) HandleTrx(ctx context.Context, fn func(txCtx context.Context) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}

	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessionCtx mongo.SessionContext) (interface{}, error) {
		err := fn(sessionCtx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		}
		return nil, err
	})

	return err
}
