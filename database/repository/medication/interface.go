package medicationRepo

import (
	"context"

	"pillpal/database"
	"pillpal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MedicationRepository persists medications and their reminder schedules.
type MedicationRepository interface {
	Create(ctx context.Context, med models.Medication) (string, error)
	GetByID(ctx context.Context, id string) (*models.Medication, error)
	ListByUser(ctx context.Context, userID string) ([]models.Medication, error)
	ListActive(ctx context.Context) ([]models.Medication, error)
	Update(ctx context.Context, med models.Medication) error
	Delete(ctx context.Context, id string) error
}

type mongoMedicationRepo struct {
	coll *mongo.Collection
}

// NewMongoMedicationRepo returns a MedicationRepository backed by MongoDB.
func NewMongoMedicationRepo() MedicationRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoMedicationRepo{
		coll: db.Collection("medications"),
	}
}
