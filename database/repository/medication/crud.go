package medicationRepo

import (
	"context"
	"errors"
	"time"

	"pillpal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new medication and returns its ID.
func (r *mongoMedicationRepo) Create(ctx context.Context, med models.Medication) (string, error) {
	if med.ID == "" {
		med.ID = uuid.New().String()
	}
	med.CreatedAt = time.Now()
	med.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, med)
	if err != nil {
		return "", err
	}
	return med.ID, nil
}

// GetByID returns a medication by its ID, or nil if none exists.
func (r *mongoMedicationRepo) GetByID(ctx context.Context, id string) (*models.Medication, error) {
	var med models.Medication
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&med)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &med, nil
}

// ListByUser fetches all medications belonging to a user.
func (r *mongoMedicationRepo) ListByUser(ctx context.Context, userID string) ([]models.Medication, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meds []models.Medication
	if err := cursor.All(ctx, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

// ListActive fetches every active medication across all users. The reminder
// clock evaluates this set once per tick.
func (r *mongoMedicationRepo) ListActive(ctx context.Context) ([]models.Medication, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meds []models.Medication
	if err := cursor.All(ctx, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

// Update replaces a medication document.
func (r *mongoMedicationRepo) Update(ctx context.Context, med models.Medication) error {
	med.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": med.ID}, med)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("medication not found")
	}
	return nil
}

// Delete removes a medication by ID.
func (r *mongoMedicationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("medication not found")
	}
	return nil
}
