package userRepo

import (
	"context"
	"errors"
	"time"

	"pillpal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID returns a user by ID, or nil if none exists.
func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByTokenHash returns the user whose current session token hashes to the
// given value, or nil if none exists.
func (r *mongoUserRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePushPlayerID stores the user's push-provider player ID.
func (r *mongoUserRepo) UpdatePushPlayerID(ctx context.Context, id, playerID string) error {
	update := bson.M{"$set": bson.M{
		"pushPlayerId": playerID,
		"updatedAt":    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}
