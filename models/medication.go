package models

import "time"

// Medication is a user's medication together with its reminder schedule.
// ReminderDays uses time.Weekday numbering (Sunday = 0).
type Medication struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"userId" json:"user_id"`
	Name           string    `bson:"name" json:"name"`
	Dosage         string    `bson:"dosage" json:"dosage"`
	Color          string    `bson:"color" json:"color"`
	ReminderHour   int       `bson:"reminderHour" json:"reminder_hour"`
	ReminderMinute int       `bson:"reminderMinute" json:"reminder_minute"`
	ReminderDays   []int     `bson:"reminderDays" json:"reminder_days"`
	IsActive       bool      `bson:"isActive" json:"is_active"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updated_at"`
}

// FiresOn reports whether the schedule includes the given weekday.
func (m *Medication) FiresOn(day time.Weekday) bool {
	for _, d := range m.ReminderDays {
		if d == int(day) {
			return true
		}
	}
	return false
}
