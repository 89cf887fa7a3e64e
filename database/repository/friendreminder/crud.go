package friendReminderRepo

import (
	"context"
	"errors"
	"time"

	"pillpal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new friend reminder record and returns its ID.
func (r *mongoFriendReminderRepo) Create(ctx context.Context, rec models.FriendReminder) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetByID returns a friend reminder by ID, or nil if none exists.
func (r *mongoFriendReminderRepo) GetByID(ctx context.Context, id string) (*models.FriendReminder, error) {
	var rec models.FriendReminder
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByRecipient fetches reminders sent to a user, newest first.
func (r *mongoFriendReminderRepo) ListByRecipient(ctx context.Context, userID string) ([]models.FriendReminder, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"toUserId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.FriendReminder
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
