package services

import (
	"context"
	"fmt"
	"time"

	"github.com/acortes/libreserve/internal/common"
	"github.com/acortes/libreserve/internal/datex"
	"github.com/acortes/libreserve/internal/logging"
	"github.com/acortes/libreserve/internal/models"
	"github.com/acortes/libreserve/internal/notify"
	"github.com/acortes/libreserve/internal/repositories/books"
	"github.com/acortes/libreserve/internal/repositories/reservations"
	"github.com/acortes/libreserve/internal/repositories/users"
)

// Reservation duration bounds in days.
const (
	MinDurationDays = 1
	MaxDurationDays = 90
)

// ReservationRow is a reservation prepared for display: references resolved
// to names (or placeholders when the referenced record is gone) and the
// remaining-day count computed against the current instant. Remaining days
// are never cached; every listing pass recomputes them.
type ReservationRow struct {
	ID            string
	UserName      string
	BookTitle     string
	Date          string
	DurationDays  int
	RemainingDays int
	MaxReturnDate string
	Overdue       bool
	ReminderSent  bool
}

// ReservationService hosts the reservation lifecycle: due-date computation at
// creation, remaining-day counts on every listing, and at-most-once reminder
// dispatch guarded by the persisted flag.
type ReservationService struct {
	reservations reservations.Repository
	users        users.Repository
	books        books.Repository
	sender       notify.Sender
	logger       logging.Logger

	// now is a seam for tests; defaults to time.Now in UTC so it lines up
	// with the UTC-midnight due dates from datex.
	now func() time.Time
}

func NewReservationService(
	res reservations.Repository,
	usr users.Repository,
	bks books.Repository,
	sender notify.Sender,
	logger logging.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: res,
		users:        usr,
		books:        bks,
		sender:       sender,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReservationService) validate(r *models.Reservation, now time.Time) (time.Time, error) {
	date, err := datex.ParseDate(r.Date)
	if err != nil {
		return time.Time{}, err
	}
	if date.After(now) {
		return time.Time{}, fmt.Errorf("%w: %s", common.ErrFutureDate, r.Date)
	}
	if r.DurationDays < MinDurationDays || r.DurationDays > MaxDurationDays {
		return time.Time{}, fmt.Errorf("%w: %d (must be %d..%d)",
			common.ErrInvalidDuration, r.DurationDays, MinDurationDays, MaxDurationDays)
	}
	return date.AddDate(0, 0, r.DurationDays), nil
}

// Create computes the maximum return date, persists the reservation with the
// reminder flag cleared, and sends a confirmation mail when both references
// resolve. A failed confirmation is logged and does not roll anything back.
// Nothing is persisted when validation fails.
func (s *ReservationService) Create(ctx context.Context, r *models.Reservation) (string, error) {
	due, err := s.validate(r, s.now())
	if err != nil {
		return "", err
	}

	r.MaxReturnDate = due.Format(datex.Layout)
	r.ReminderSent = false

	id, err := s.reservations.Create(ctx, r)
	if err != nil {
		return "", fmt.Errorf("error saving reservation: %w", err)
	}
	r.ID = id

	s.sendConfirmation(ctx, r)

	return id, nil
}

func (s *ReservationService) sendConfirmation(ctx context.Context, r *models.Reservation) {
	user, err := s.users.GetByID(ctx, r.UserID)
	if err != nil {
		s.logger.Warn(ctx, "confirmation skipped: user not found", "reservation", r.ID, "user", r.UserID)
		return
	}
	book, err := s.books.GetByID(ctx, r.BookID)
	if err != nil {
		s.logger.Warn(ctx, "confirmation skipped: book not found", "reservation", r.ID, "book", r.BookID)
		return
	}

	subject, body := notify.ConfirmationMessage(user.Name, book.Title, r.Date, r.DurationDays, r.MaxReturnDate)
	if err := s.sender.Send(ctx, user.Email, subject, body); err != nil {
		s.logger.Error(ctx, "confirmation mail failed", "reservation", r.ID, "error", err.Error())
		return
	}
	s.logger.Info(ctx, "confirmation mail sent", "reservation", r.ID, "to", user.Email)
}

// List returns display rows for all reservations and runs the reminder
// evaluation on each. Dangling user/book references degrade the row instead
// of failing the listing.
func (s *ReservationService) List(ctx context.Context) ([]ReservationRow, error) {
	all, err := s.reservations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	return s.buildRows(ctx, all), nil
}

// FindByUserDocument resolves an identity-document number to a user and
// returns that user's reservations, prepared and evaluated like List.
func (s *ReservationService) FindByUserDocument(ctx context.Context, document string) ([]ReservationRow, error) {
	user, err := s.users.FindByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	found, err := s.reservations.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	return s.buildRows(ctx, found), nil
}

func (s *ReservationService) buildRows(ctx context.Context, list []models.Reservation) []ReservationRow {
	now := s.now()

	rows := make([]ReservationRow, 0, len(list))
	for i := range list {
		r := &list[i]

		s.EvaluateAndNotify(ctx, r, now)

		row := ReservationRow{
			ID:           r.ID,
			UserName:     "(unknown user)",
			BookTitle:    "(unknown book)",
			Date:         r.Date,
			DurationDays: r.DurationDays,
			ReminderSent: r.ReminderSent,
		}

		if user, err := s.users.GetByID(ctx, r.UserID); err == nil {
			row.UserName = user.Name
		}
		if book, err := s.books.GetByID(ctx, r.BookID); err == nil {
			row.BookTitle = book.Title
		}

		due, err := datex.DueDate(r.Date, r.DurationDays)
		if err != nil {
			// stored date is unreadable; show the record as-is
			s.logger.Warn(ctx, "stored reservation date unreadable", "reservation", r.ID, "date", r.Date)
			row.MaxReturnDate = r.MaxReturnDate
			rows = append(rows, row)
			continue
		}

		row.MaxReturnDate = due.Format(datex.Layout)
		row.RemainingDays = datex.RemainingDays(due, now)
		row.Overdue = datex.Overdue(due, now)
		rows = append(rows, row)
	}
	return rows
}

// EvaluateAndNotify runs the reminder state machine for one reservation:
// if exactly one day remains, the reminder has not been sent, and both the
// user and the book still resolve, it dispatches the reminder and persists
// the flag. On dispatch failure the flag stays false so the next listing
// pass retries; the persisted flag is the sole guard against duplicates.
func (s *ReservationService) EvaluateAndNotify(ctx context.Context, r *models.Reservation, now time.Time) {
	if r.ReminderSent {
		return
	}

	due, err := datex.DueDate(r.Date, r.DurationDays)
	if err != nil {
		return
	}
	if datex.RemainingDays(due, now) != 1 {
		return
	}

	user, err := s.users.GetByID(ctx, r.UserID)
	if err != nil {
		s.logger.Warn(ctx, "reminder skipped: user not found", "reservation", r.ID, "user", r.UserID)
		return
	}
	book, err := s.books.GetByID(ctx, r.BookID)
	if err != nil {
		s.logger.Warn(ctx, "reminder skipped: book not found", "reservation", r.ID, "book", r.BookID)
		return
	}

	subject, body := notify.ReminderMessage(user.Name, book.Title, due.Format(datex.Layout))
	if err := s.sender.Send(ctx, user.Email, subject, body); err != nil {
		s.logger.Error(ctx, "reminder mail failed", "reservation", r.ID, "error", err.Error())
		return
	}

	if err := s.reservations.MarkReminderSent(ctx, r.ID, true); err != nil {
		s.logger.Error(ctx, "failed to persist reminder flag", "reservation", r.ID, "error", err.Error())
		return
	}
	r.ReminderSent = true
	s.logger.Info(ctx, "reminder mail sent", "reservation", r.ID, "to", user.Email)
}

// Get returns a stored reservation by id.
func (s *ReservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// Update validates the edited fields, recomputes the maximum return date,
// and clears the reminder flag so a pushed-out reservation earns a fresh
// reminder. Nothing is persisted when validation fails.
func (s *ReservationService) Update(ctx context.Context, id string, r *models.Reservation) error {
	due, err := s.validate(r, s.now())
	if err != nil {
		return err
	}

	r.MaxReturnDate = due.Format(datex.Layout)
	r.ReminderSent = false

	return s.reservations.Update(ctx, id, r)
}

// Delete removes a reservation.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	return s.reservations.Delete(ctx, id)
}
