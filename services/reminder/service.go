package reminder

import (
	"context"
	"sync"
	"time"

	medicationRepo "pillpal/database/repository/medication"
	reminderRepo "pillpal/database/repository/reminder"
	"pillpal/models"

	"go.uber.org/zap"
)

// DefaultReminderService is the production ReminderService. The Clock in
// this package shares its lock table, so a user action and a concurrent
// tick can never race on the same medication.
type DefaultReminderService struct {
	Meds      medicationRepo.MedicationRepository
	Reminders reminderRepo.ReminderRepository
	Logger    *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewReminderService(meds medicationRepo.MedicationRepository, rems reminderRepo.ReminderRepository, logger *zap.Logger) *DefaultReminderService {
	return &DefaultReminderService{
		Meds:      meds,
		Reminders: rems,
		Logger:    logger,
		locks:     make(map[string]*sync.Mutex),
	}
}

// lockMedication acquires the per-medication mutex and returns its release.
func (s *DefaultReminderService) lockMedication(medicationID string) func() {
	s.mu.Lock()
	m, ok := s.locks[medicationID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[medicationID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (s *DefaultReminderService) MarkTaken(ctx context.Context, instanceID, photoRef, notes string) (*models.ReminderInstance, bool, error) {
	return s.resolve(ctx, instanceID, false, photoRef, notes)
}

func (s *DefaultReminderService) MarkSkipped(ctx context.Context, instanceID, notes string) (*models.ReminderInstance, bool, error) {
	return s.resolve(ctx, instanceID, true, "", notes)
}

// resolve performs the shared terminal transition for taken and skipped.
func (s *DefaultReminderService) resolve(ctx context.Context, instanceID string, skipped bool, photoRef, notes string) (*models.ReminderInstance, bool, error) {
	inst, err := s.Reminders.GetByID(ctx, instanceID)
	if err != nil {
		return nil, false, err
	}
	if inst == nil {
		return nil, false, &NotFoundError{Resource: "reminder instance", ID: instanceID}
	}

	unlock := s.lockMedication(inst.MedicationID)
	defer unlock()

	// Re-read under the lock; a concurrent resolve may have won.
	inst, err = s.Reminders.GetByID(ctx, instanceID)
	if err != nil {
		return nil, false, err
	}
	if inst == nil {
		return nil, false, &NotFoundError{Resource: "reminder instance", ID: instanceID}
	}
	if inst.Status.Terminal() {
		return inst, true, nil
	}

	if skipped {
		inst.Status = models.ReminderSkipped
	} else {
		inst.Status = models.ReminderTaken
	}
	inst.SnoozedUntil = nil
	if err := s.Reminders.Update(ctx, *inst); err != nil {
		return nil, false, err
	}

	entry := models.MedicationLog{
		MedicationID: inst.MedicationID,
		UserID:       inst.UserID,
		TakenAt:      time.Now(),
		Skipped:      skipped,
		PhotoRef:     photoRef,
		Notes:        notes,
	}
	if _, err := s.Reminders.CreateLog(ctx, entry); err != nil {
		return nil, false, err
	}

	s.Logger.Info("reminder resolved",
		zap.String("instanceID", inst.ID),
		zap.String("medicationID", inst.MedicationID),
		zap.Bool("skipped", skipped),
	)
	return inst, false, nil
}

func (s *DefaultReminderService) Snooze(ctx context.Context, instanceID string, minutes int) (*models.ReminderInstance, error) {
	if minutes <= 0 {
		return nil, &InvalidStateError{Op: "snooze", Status: "non-positive minutes"}
	}

	inst, err := s.Reminders.GetByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, &NotFoundError{Resource: "reminder instance", ID: instanceID}
	}

	unlock := s.lockMedication(inst.MedicationID)
	defer unlock()

	inst, err = s.Reminders.GetByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, &NotFoundError{Resource: "reminder instance", ID: instanceID}
	}
	if inst.Status != models.ReminderShown && inst.Status != models.ReminderSnoozed {
		return nil, &InvalidStateError{Op: "snooze", Status: string(inst.Status)}
	}

	until := time.Now().Add(time.Duration(minutes) * time.Minute)
	inst.Status = models.ReminderSnoozed
	inst.SnoozedUntil = &until
	if err := s.Reminders.Update(ctx, *inst); err != nil {
		return nil, err
	}

	s.Logger.Info("reminder snoozed",
		zap.String("instanceID", inst.ID),
		zap.String("medicationID", inst.MedicationID),
		zap.Int("minutes", minutes),
	)
	return inst, nil
}

// DeleteMedication cancels any open instance and deletes the medication
// under the same lock, so a concurrent tick cannot resurrect a reminder for
// a medication that no longer exists.
func (s *DefaultReminderService) DeleteMedication(ctx context.Context, medicationID string) error {
	unlock := s.lockMedication(medicationID)
	defer unlock()

	med, err := s.Meds.GetByID(ctx, medicationID)
	if err != nil {
		return err
	}
	if med == nil {
		return &NotFoundError{Resource: "medication", ID: medicationID}
	}

	if err := s.Reminders.DeleteOpenByMedication(ctx, medicationID); err != nil {
		return err
	}
	if err := s.Meds.Delete(ctx, medicationID); err != nil {
		return err
	}

	s.Logger.Info("medication deleted", zap.String("medicationID", medicationID))
	return nil
}
