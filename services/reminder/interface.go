package reminder

import (
	"context"

	"pillpal/models"
)

// ReminderService is the per-instance state machine. Transitions for a
// given medication are linearized against each other and against the clock.
type ReminderService interface {
	// MarkTaken resolves an instance as taken and writes the log entry.
	// Calling it on an already resolved instance is a no-op; the returned
	// flag reports that case.
	MarkTaken(ctx context.Context, instanceID, photoRef, notes string) (inst *models.ReminderInstance, alreadyResolved bool, err error)

	// MarkSkipped resolves an instance as skipped. Same no-op semantics as
	// MarkTaken.
	MarkSkipped(ctx context.Context, instanceID, notes string) (inst *models.ReminderInstance, alreadyResolved bool, err error)

	// Snooze defers a shown (or re-snoozes an already snoozed) instance by
	// the given number of minutes. A second snooze replaces the previous
	// snoozedUntil; it never stacks and never creates a new instance.
	Snooze(ctx context.Context, instanceID string, minutes int) (*models.ReminderInstance, error)

	// DeleteMedication removes a medication together with any open
	// instance for it, under the medication's lock.
	DeleteMedication(ctx context.Context, medicationID string) error
}
