package friendshipRepo

import (
	"context"

	"pillpal/database"
	"pillpal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FriendshipRepository reads friendship records. The reminder engine never
// mutates friendships; pairing flows live in the companion app backend.
type FriendshipRepository interface {
	// GetAccepted returns the accepted friendship linking the two users,
	// matching either column order, or nil if none exists.
	GetAccepted(ctx context.Context, userA, userB string) (*models.Friendship, error)
	ListAccepted(ctx context.Context, userID string) ([]models.Friendship, error)
}

type mongoFriendshipRepo struct {
	coll *mongo.Collection
}

// NewMongoFriendshipRepo returns a FriendshipRepository backed by MongoDB.
func NewMongoFriendshipRepo() FriendshipRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoFriendshipRepo{
		coll: db.Collection("friendships"),
	}
}
