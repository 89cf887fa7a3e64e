package friendReminderRepo

import (
	"context"

	"pillpal/database"
	"pillpal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FriendReminderRepository persists dispatched friend reminders. The record
// is the source of truth for a dispatch; push delivery is best-effort on top.
type FriendReminderRepository interface {
	Create(ctx context.Context, rec models.FriendReminder) (string, error)
	GetByID(ctx context.Context, id string) (*models.FriendReminder, error)
	ListByRecipient(ctx context.Context, userID string) ([]models.FriendReminder, error)
}

type mongoFriendReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoFriendReminderRepo returns a FriendReminderRepository backed by MongoDB.
func NewMongoFriendReminderRepo() FriendReminderRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoFriendReminderRepo{
		coll: db.Collection("friend_reminders"),
	}
}
