package repository

import (
	"context"
	"time"

	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepositoryImpl struct {
	db *mongo.Database
}

func CreateUserRepository(db *mongo.Database) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (data domain.User, err error) {
	filter := bson.D{{Key: "email", Value: email}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByExternalID(ctx context.Context, externalID string) (data domain.User, err error) {
	filter := bson.D{{Key: "external_id", Value: externalID}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByExternalID").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrAccountNotFound
		}

		return data, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	filter := bson.D{{Key: "external_id", Value: data.ExternalID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "hashed_password", Value: data.HashedPassword},
		{Key: "updated_at", Value: time.Now().UnixMilli()},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}
