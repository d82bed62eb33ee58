package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/acortes/libreserve/internal/datex"
	"github.com/acortes/libreserve/internal/models"
	"github.com/acortes/libreserve/internal/services"
)

func (a *App) printRows(rows []services.ReservationRow) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tBOOK\tDATE\tDAYS LEFT\tDUE DATE")
	for _, r := range rows {
		left := fmt.Sprintf("%d", r.RemainingDays)
		if r.Overdue {
			left += " (overdue)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.UserName, r.BookTitle, r.Date, left, r.MaxReturnDate)
	}
	return w.Flush()
}

// ListReservations renders the reservation table. Due-soon reminders are
// evaluated by the service as part of this pass.
func (a *App) ListReservations(ctx context.Context) error {
	rows, err := a.reservations.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	return a.printRows(rows)
}

func (a *App) promptReservation(ctx context.Context, r *models.Reservation) error {
	document, err := GetSimpleText(a.reader, "User identity document", a.out)
	if err != nil {
		return err
	}
	user, err := a.users.FindByDocument(ctx, document)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	r.UserID = user.ID

	if r.BookID, err = GetSimpleText(a.reader, "Book ID", a.out); err != nil {
		return err
	}

	today := time.Now().UTC().Format(datex.Layout)
	date, err := GetSimpleText(a.reader, "Reservation date YYYY-MM-DD (empty = today)", a.out)
	if err != nil {
		return err
	}
	if date == "" {
		date = today
	}
	r.Date = date

	if r.DurationDays, err = GetInt(a.reader, "Reservation days (1-90)", 15, a.out); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	return nil
}

func (a *App) AddReservation(ctx context.Context) error {
	var r models.Reservation
	if err := a.promptReservation(ctx, &r); err != nil {
		return err
	}

	id, err := a.reservations.Create(ctx, &r)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Reservation created:", id, "due", r.MaxReturnDate)
	return nil
}

func (a *App) EditReservation(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Reservation ID", a.out)
	if err != nil {
		return err
	}

	var r models.Reservation
	if err := a.promptReservation(ctx, &r); err != nil {
		return err
	}

	if err := a.reservations.Update(ctx, id, &r); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Reservation updated, due", r.MaxReturnDate)
	return nil
}

// DeleteReservation asks for written confirmation before removing a record.
func (a *App) DeleteReservation(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Reservation ID", a.out)
	if err != nil {
		return err
	}

	confirmation, err := GetSimpleText(a.reader, "Type CONFIRM to delete", a.out)
	if err != nil {
		return err
	}
	if confirmation != "CONFIRM" {
		printlnFn("Deletion cancelled")
		return nil
	}

	if err := a.reservations.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Reservation deleted")
	return nil
}

// FindByDocument lists the reservations held by the person with the given
// identity document.
func (a *App) FindByDocument(ctx context.Context) error {
	document, err := GetSimpleText(a.reader, "User identity document", a.out)
	if err != nil {
		return err
	}

	rows, err := a.reservations.FindByUserDocument(ctx, document)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(rows) == 0 {
		printlnFn("No reservations for this user")
		return nil
	}
	return a.printRows(rows)
}
