// Package schedule holds the pure due-time arithmetic for medication
// reminder schedules. No I/O happens here.
package schedule

import (
	"time"

	"pillpal/models"
)

// IsDueAt reports whether a medication's schedule fires at the given
// instant. The match is minute-exact: a tick that lands anywhere inside the
// scheduled minute is due, and a minute that passes without a tick is
// permanently missed for that day. The clock must therefore tick at least
// once per minute.
func IsDueAt(med *models.Medication, instant time.Time) bool {
	if !med.IsActive {
		return false
	}
	if !med.FiresOn(instant.Weekday()) {
		return false
	}
	return instant.Hour() == med.ReminderHour && instant.Minute() == med.ReminderMinute
}
