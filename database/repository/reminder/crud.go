package reminderRepo

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

var openStatuses = bson.A{
	models.ReminderPending,
	models.ReminderShown,
	models.ReminderSnoozed,
}

// Create inserts a new reminder instance and returns its ID.
func (r *mongoReminderRepo) Create(ctx context.Context, inst models.ReminderInstance) (string, error) {
	if inst.ID == "" {
		inst.ID = uuid.New().String()
	}
	inst.CreatedAt = time.Now()
	inst.UpdatedAt = time.Now()

	_, err := r.instances.InsertOne(ctx, inst)
	if err != nil {
		return "", err
	}
	return inst.ID, nil
}

// GetByID returns an instance by ID, or nil if none exists.
func (r *mongoReminderRepo) GetByID(ctx context.Context, id string) (*models.ReminderInstance, error) {
	var inst models.ReminderInstance
	err := r.instances.FindOne(ctx, bson.M{"id": id}).Decode(&inst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// GetOpenByMedication returns the single unresolved instance for a
// medication, or nil if the medication has no open instance.
func (r *mongoReminderRepo) GetOpenByMedication(ctx context.Context, medicationID string) (*models.ReminderInstance, error) {
	filter := bson.M{
		"medicationId": medicationID,
		"status":       bson.M{"$in": openStatuses},
	}
	opts := options.FindOne().SetSort(bson.M{"dueAt": -1})

	var inst models.ReminderInstance
	err := r.instances.FindOne(ctx, filter, opts).Decode(&inst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// Update replaces an instance document.
func (r *mongoReminderRepo) Update(ctx context.Context, inst models.ReminderInstance) error {
	inst.UpdatedAt = time.Now()
	res, err := r.instances.ReplaceOne(ctx, bson.M{"id": inst.ID}, inst)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("reminder instance not found")
	}
	return nil
}

// DeleteOpenByMedication removes any unresolved instances for a medication.
// Used when the medication itself is deleted; resolved instances stay in
// the log history and are untouched.
func (r *mongoReminderRepo) DeleteOpenByMedication(ctx context.Context, medicationID string) error {
	filter := bson.M{
		"medicationId": medicationID,
		"status":       bson.M{"$in": openStatuses},
	}
	_, err := r.instances.DeleteMany(ctx, filter)
	return err
}

// CreateLog inserts an immutable medication log entry.
func (r *mongoReminderRepo) CreateLog(ctx context.Context, entry models.MedicationLog) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	_, err := r.logs.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// ListLogsByUser fetches a user's dose history, newest first.
func (r *mongoReminderRepo) ListLogsByUser(ctx context.Context, userID string) ([]models.MedicationLog, error) {
	opts := options.Find().SetSort(bson.M{"takenAt": -1})
	cursor, err := r.logs.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.MedicationLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
