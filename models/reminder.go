package models

import "time"

// ReminderStatus is the lifecycle state of a ReminderInstance.
type ReminderStatus string

const (
	ReminderPending ReminderStatus = "pending"
	ReminderShown   ReminderStatus = "shown"
	ReminderSnoozed ReminderStatus = "snoozed"
	ReminderTaken   ReminderStatus = "taken"
	ReminderSkipped ReminderStatus = "skipped"
)

// Terminal reports whether the status can no longer change.
func (s ReminderStatus) Terminal() bool {
	return s == ReminderTaken || s == ReminderSkipped
}

// Open reports whether the instance still awaits user resolution.
func (s ReminderStatus) Open() bool {
	return s == ReminderPending || s == ReminderShown || s == ReminderSnoozed
}

// ReminderInstance is one concrete occurrence of a medication's recurring
// schedule. At most one open instance may exist per medication.
type ReminderInstance struct {
	ID           string         `bson:"id" json:"id"`
	MedicationID string         `bson:"medicationId" json:"medication_id"`
	UserID       string         `bson:"userId" json:"user_id"`
	DueAt        time.Time      `bson:"dueAt" json:"due_at"`
	Status       ReminderStatus `bson:"status" json:"status"`
	SnoozedUntil *time.Time     `bson:"snoozedUntil,omitempty" json:"snoozed_until,omitempty"`
	CreatedAt    time.Time      `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updated_at"`
}

// MedicationLog is the immutable record written when an instance resolves.
type MedicationLog struct {
	ID           string    `bson:"id" json:"id"`
	MedicationID string    `bson:"medicationId" json:"medication_id"`
	UserID       string    `bson:"userId" json:"user_id"`
	TakenAt      time.Time `bson:"takenAt" json:"taken_at"`
	Skipped      bool      `bson:"skipped" json:"skipped"`
	PhotoRef     string    `bson:"photoRef,omitempty" json:"photo_ref,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// FriendReminderRequest is the inbound body of a cross-user reminder.
type FriendReminderRequest struct {
	FromUserID     string `json:"from_user_id" binding:"required"`
	ToUserID       string `json:"to_user_id" binding:"required"`
	MedicationID   string `json:"medication_id" binding:"required"`
	Message        string `json:"message" binding:"required"`
	MedicationName string `json:"medication_name"`
}

// FriendReminder is the persisted record of a dispatched friend reminder.
// It exists regardless of whether the push attempt succeeded.
type FriendReminder struct {
	ID             string    `bson:"id" json:"id"`
	FromUserID     string    `bson:"fromUserId" json:"from_user_id"`
	ToUserID       string    `bson:"toUserId" json:"to_user_id"`
	MedicationID   string    `bson:"medicationId" json:"medication_id"`
	Message        string    `bson:"message" json:"message"`
	MedicationName string    `bson:"medicationName,omitempty" json:"medication_name,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
}

// PushNotification is a provider-agnostic push payload.
type PushNotification struct {
	RecipientExternalID string            `json:"recipient_external_id"`
	Heading             string            `json:"heading"`
	Body                string            `json:"body"`
	Data                map[string]string `json:"data,omitempty"`
}
