package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/acortes/libreserve/internal/models"
)

func (a *App) ListUsers(ctx context.Context) error {
	users, err := a.users.GetAll(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tDOCUMENT\tPHONE")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Document, u.Phone)
	}
	return w.Flush()
}

func (a *App) promptUser(u *models.User) error {
	var err error
	if u.Name, err = GetSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if u.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if u.Document, err = GetSimpleText(a.reader, "Identity document number", a.out); err != nil {
		return err
	}
	if u.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	var u models.User
	if err := a.promptUser(&u); err != nil {
		return err
	}

	id, err := a.users.Create(ctx, &u)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("User created:", id)
	return nil
}

func (a *App) EditUser(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "User ID", a.out)
	if err != nil {
		return err
	}

	var u models.User
	if err := a.promptUser(&u); err != nil {
		return err
	}

	if err := a.users.Update(ctx, id, &u); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("User updated")
	return nil
}

func (a *App) DeleteUser(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "User ID", a.out)
	if err != nil {
		return err
	}

	if err := a.users.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("User deleted")
	return nil
}
