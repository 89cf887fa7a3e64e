package reminderRepo

import (
	"context"

	"pillpal/database"
	"pillpal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReminderRepository persists reminder instances and medication logs.
// "Open" means status in {pending, shown, snoozed}.
type ReminderRepository interface {
	Create(ctx context.Context, inst models.ReminderInstance) (string, error)
	GetByID(ctx context.Context, id string) (*models.ReminderInstance, error)
	GetOpenByMedication(ctx context.Context, medicationID string) (*models.ReminderInstance, error)
	Update(ctx context.Context, inst models.ReminderInstance) error
	DeleteOpenByMedication(ctx context.Context, medicationID string) error

	CreateLog(ctx context.Context, entry models.MedicationLog) (string, error)
	ListLogsByUser(ctx context.Context, userID string) ([]models.MedicationLog, error)
}

type mongoReminderRepo struct {
	instances *mongo.Collection
	logs      *mongo.Collection
}

// NewMongoReminderRepo returns a ReminderRepository backed by MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoReminderRepo{
		instances: db.Collection("reminder_instances"),
		logs:      db.Collection("medication_logs"),
	}
}
