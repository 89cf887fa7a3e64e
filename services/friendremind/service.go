package friendremind

import (
	"context"
	"fmt"

	friendReminderRepo "pillpal/database/repository/friendreminder"
	friendshipRepo "pillpal/database/repository/friendship"
	userRepo "pillpal/database/repository/user"
	"pillpal/models"
	"pillpal/services/notification"

	"go.uber.org/zap"
)

// DefaultFriendReminderService is the production FriendReminderService.
type DefaultFriendReminderService struct {
	Friendships friendshipRepo.FriendshipRepository
	Reminders   friendReminderRepo.FriendReminderRepository
	Users       userRepo.UserRepository
	Push        notification.PushService
	Logger      *zap.Logger
}

func (s *DefaultFriendReminderService) Authorize(ctx context.Context, req models.FriendReminderRequest, callerID string) error {
	if req.FromUserID != callerID {
		return &DeniedError{Reason: "identity mismatch"}
	}

	fr, err := s.Friendships.GetAccepted(ctx, req.FromUserID, req.ToUserID)
	if err != nil {
		return fmt.Errorf("friendship lookup failed: %w", err)
	}
	if fr == nil {
		return &DeniedError{Reason: "not friends"}
	}
	return nil
}

func (s *DefaultFriendReminderService) Send(ctx context.Context, req models.FriendReminderRequest, callerID string) (*models.FriendReminder, notification.DeliveryOutcome, error) {
	if err := s.Authorize(ctx, req, callerID); err != nil {
		return nil, "", err
	}

	rec := models.FriendReminder{
		FromUserID:     req.FromUserID,
		ToUserID:       req.ToUserID,
		MedicationID:   req.MedicationID,
		Message:        req.Message,
		MedicationName: req.MedicationName,
	}
	id, err := s.Reminders.Create(ctx, rec)
	if err != nil {
		return nil, "", fmt.Errorf("failed to persist friend reminder: %w", err)
	}
	rec.ID = id

	// From here on the reminder exists; push delivery is a side channel
	// whose failure is recorded but never propagated as an error.
	outcome := s.dispatch(ctx, &rec)

	s.Logger.Info("friend reminder dispatched",
		zap.String("reminderID", rec.ID),
		zap.String("from", rec.FromUserID),
		zap.String("to", rec.ToUserID),
		zap.String("outcome", string(outcome)),
	)
	return &rec, outcome, nil
}

func (s *DefaultFriendReminderService) dispatch(ctx context.Context, rec *models.FriendReminder) notification.DeliveryOutcome {
	sender, err := s.Users.GetByID(ctx, rec.FromUserID)
	if err != nil || sender == nil {
		s.Logger.Warn("friend reminder push: sender profile unavailable",
			zap.String("userID", rec.FromUserID), zap.Error(err))
		return notification.OutcomeSkipped
	}
	recipient, err := s.Users.GetByID(ctx, rec.ToUserID)
	if err != nil || recipient == nil {
		s.Logger.Warn("friend reminder push: recipient profile unavailable",
			zap.String("userID", rec.ToUserID), zap.Error(err))
		return notification.OutcomeSkipped
	}

	note := models.PushNotification{
		RecipientExternalID: recipient.PushPlayerID,
		Heading:             sender.SenderName(),
		Body:                rec.Message,
		Data: map[string]string{
			"type":        "friend_reminder",
			"reminder_id": rec.ID,
		},
	}
	if rec.MedicationName != "" {
		note.Data["medication_name"] = rec.MedicationName
	}
	return s.Push.Send(ctx, note)
}
