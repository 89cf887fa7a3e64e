package notification

import (
	"context"

	"pillpal/models"
)

// DeliveryOutcome classifies the result of one push attempt. Dispatch is
// best-effort and at-most-once: any outcome other than Sent is logged, never
// retried, and never rolls back the record that triggered the push.
type DeliveryOutcome string

const (
	// OutcomeSent means the provider accepted the notification.
	OutcomeSent DeliveryOutcome = "sent"
	// OutcomeDisabled means no provider credentials are configured.
	OutcomeDisabled DeliveryOutcome = "disabled"
	// OutcomeSkipped means the recipient has no push identity on record.
	OutcomeSkipped DeliveryOutcome = "skipped"
	// OutcomeProviderUnavailable means the call timed out or never reached
	// the provider.
	OutcomeProviderUnavailable DeliveryOutcome = "provider_unavailable"
	// OutcomeProviderError means the provider answered with a non-success
	// response.
	OutcomeProviderError DeliveryOutcome = "provider_error"
)

// PushService sends push notifications through the configured provider.
type PushService interface {
	Send(ctx context.Context, note models.PushNotification) DeliveryOutcome
}
