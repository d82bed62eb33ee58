package models

// Reservation links a user to a book for a number of days.
//
// Date and MaxReturnDate are calendar dates in YYYY-MM-DD form with no
// time-of-day. MaxReturnDate is derived (Date + DurationDays) and must never
// be persisted out of sync with those two fields. User and book are
// referenced by id, not owned: deleting either does not cascade here, and
// readers must tolerate dangling references.
type Reservation struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	BookID        string `json:"book_id"`
	Date          string `json:"date"`
	DurationDays  int    `json:"duration_days"`
	MaxReturnDate string `json:"max_return_date"`

	// ReminderSent flips false→true exactly once, when a due-tomorrow
	// reminder is successfully dispatched. It is the sole guard against
	// duplicate reminders.
	ReminderSent bool `json:"reminder_sent"`
}
