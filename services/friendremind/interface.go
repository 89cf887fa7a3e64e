package friendremind

import (
	"context"
	"fmt"

	"pillpal/models"
	"pillpal/services/notification"
)

// FriendReminderService authorizes and dispatches cross-user reminders.
type FriendReminderService interface {
	// Authorize checks, in order, that the request is self-attributed and
	// that an accepted friendship links the two users. It reads only; no
	// state changes on denial.
	Authorize(ctx context.Context, req models.FriendReminderRequest, callerID string) error

	// Send authorizes the request, persists the reminder record, then
	// attempts a best-effort push. The record survives any push failure.
	Send(ctx context.Context, req models.FriendReminderRequest, callerID string) (*models.FriendReminder, notification.DeliveryOutcome, error)
}

// DeniedError reports why authorization failed.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("friend reminder denied: %s", e.Reason)
}
