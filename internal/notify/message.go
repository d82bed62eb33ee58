package notify

import "fmt"

// ConfirmationMessage builds the mail sent right after a reservation is
// created.
func ConfirmationMessage(userName, bookTitle, date string, durationDays int, dueDate string) (subject, body string) {
	subject = "Book Reservation Confirmed"
	body = fmt.Sprintf("Hello %s,\n\n"+
		"Your reservation of the book '%s' has been placed.\n"+
		"Reservation date: %s\n"+
		"Reservation days: %d\n"+
		"Return deadline: %s\n\n"+
		"Thank you for using our library service.\n\n"+
		"Regards,\nYour trusted library.",
		userName, bookTitle, date, durationDays, dueDate)
	return subject, body
}

// ReminderMessage builds the mail sent when exactly one day remains before
// the return deadline.
func ReminderMessage(userName, bookTitle, dueDate string) (subject, body string) {
	subject = "Book Return Reminder"
	body = fmt.Sprintf("Hello %s,\n\n"+
		"This is a reminder that you must return the book '%s' tomorrow, %s.\n\n"+
		"Thank you for using our library service.\n\n"+
		"Regards,\nYour trusted library.",
		userName, bookTitle, dueDate)
	return subject, body
}
