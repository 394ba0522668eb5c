package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
)

func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleSeller
}

// Role is assigned at registration and never changed afterwards.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID     string             `bson:"external_id"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	HashedPassword string             `bson:"hashed_password"`
	Role           string             `bson:"role"`
	Disabled       bool               `bson:"disabled"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}
