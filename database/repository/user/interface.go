package userRepo

import (
	"context"

	"pillpal/database"
	"pillpal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository reads user profiles and maintains their push identity.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	UpdatePushPlayerID(ctx context.Context, id, playerID string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
