package friendshipRepo

import (
	"context"
	"errors"

	"pillpal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetAccepted treats the friendship pair as unordered: a single $or filter
// covers both column orders.
func (r *mongoFriendshipRepo) GetAccepted(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	filter := bson.M{
		"status": models.FriendshipAccepted,
		"$or": bson.A{
			bson.M{"userId": userA, "friendId": userB},
			bson.M{"userId": userB, "friendId": userA},
		},
	}

	var fr models.Friendship
	err := r.coll.FindOne(ctx, filter).Decode(&fr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

// ListAccepted fetches all accepted friendships involving the user, on
// either side of the pair.
func (r *mongoFriendshipRepo) ListAccepted(ctx context.Context, userID string) ([]models.Friendship, error) {
	filter := bson.M{
		"status": models.FriendshipAccepted,
		"$or": bson.A{
			bson.M{"userId": userID},
			bson.M{"friendId": userID},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var friendships []models.Friendship
	if err := cursor.All(ctx, &friendships); err != nil {
		return nil, err
	}
	return friendships, nil
}
