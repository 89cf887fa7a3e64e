package reminder

import (
	"context"
	"time"

	"pillpal/models"
	"pillpal/services/schedule"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// DefaultTickInterval is how often the clock evaluates schedules. It must
// not exceed one minute or due minutes can be missed entirely.
const DefaultTickInterval = time.Minute

// Clock periodically evaluates every active medication schedule and
// surfaces newly due reminders. A single evaluation runs at a time; ticks
// that fire while one is still running are skipped, not queued.
type Clock struct {
	Svc      *DefaultReminderService
	Interval time.Duration
	Logger   *zap.Logger

	sched gocron.Scheduler
}

func NewClock(svc *DefaultReminderService, interval time.Duration, logger *zap.Logger) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{
		Svc:      svc,
		Interval: interval,
		Logger:   logger,
	}
}

// Start registers the periodic job and begins ticking.
func (c *Clock) Start() error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(c.Interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), c.Interval)
			defer cancel()
			c.Tick(ctx, time.Now())
		}),
		// Skip ticks that fire while an evaluation is still running.
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.Start()
	c.sched = s
	c.Logger.Info("reminder clock started", zap.Duration("interval", c.Interval))
	return nil
}

// Stop shuts the scheduler down, waiting for a running tick to finish.
func (c *Clock) Stop() error {
	if c.sched == nil {
		return nil
	}
	return c.sched.Shutdown()
}

// Tick evaluates all active schedules against now and returns the
// medication IDs that became due on this tick, including snoozed reminders
// whose deferral has expired. A failure evaluating one medication never
// blocks the others. Only the current minute is evaluated; occurrences
// missed while the process was suspended are not backfilled.
func (c *Clock) Tick(ctx context.Context, now time.Time) []string {
	meds, err := c.Svc.Meds.ListActive(ctx)
	if err != nil {
		c.Logger.Error("tick: failed to list active medications", zap.Error(err))
		return nil
	}

	var due []string
	for i := range meds {
		surfaced, err := c.evaluate(ctx, &meds[i], now)
		if err != nil {
			c.Logger.Error("tick: evaluation failed",
				zap.String("medicationID", meds[i].ID),
				zap.Error(err),
			)
			continue
		}
		if surfaced {
			due = append(due, meds[i].ID)
		}
	}
	return due
}

// evaluate decides, under the medication's lock, whether a reminder should
// surface now.
func (c *Clock) evaluate(ctx context.Context, med *models.Medication, now time.Time) (bool, error) {
	unlock := c.Svc.lockMedication(med.ID)
	defer unlock()

	open, err := c.Svc.Reminders.GetOpenByMedication(ctx, med.ID)
	if err != nil {
		return false, err
	}

	if open != nil {
		// An unresolved instance blocks any new occurrence. A snoozed one
		// re-surfaces once its deferral has passed.
		if open.Status == models.ReminderSnoozed && open.SnoozedUntil != nil && !now.Before(*open.SnoozedUntil) {
			open.Status = models.ReminderShown
			open.SnoozedUntil = nil
			if err := c.Svc.Reminders.Update(ctx, *open); err != nil {
				return false, err
			}
			c.Logger.Debug("snoozed reminder re-surfaced", zap.String("medicationID", med.ID))
			return true, nil
		}
		return false, nil
	}

	if !schedule.IsDueAt(med, now) {
		return false, nil
	}

	inst := models.ReminderInstance{
		MedicationID: med.ID,
		UserID:       med.UserID,
		DueAt:        now,
		Status:       models.ReminderPending,
	}
	id, err := c.Svc.Reminders.Create(ctx, inst)
	if err != nil {
		return false, err
	}

	// Pending is transient: the instance is handed to the user-facing
	// layer on the same tick that created it.
	created, err := c.Svc.Reminders.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	created.Status = models.ReminderShown
	if err := c.Svc.Reminders.Update(ctx, *created); err != nil {
		return false, err
	}

	c.Logger.Info("reminder due",
		zap.String("medicationID", med.ID),
		zap.String("instanceID", id),
		zap.Time("dueAt", now),
	)
	return true, nil
}
