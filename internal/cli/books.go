package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/acortes/libreserve/internal/models"
)

func (a *App) ListBooks(ctx context.Context) error {
	books, err := a.books.GetAll(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tISBN")
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.ISBN)
	}
	return w.Flush()
}

func (a *App) promptBook(b *models.Book) error {
	var err error
	if b.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if b.Author, err = GetSimpleText(a.reader, "Author", a.out); err != nil {
		return err
	}
	if b.ISBN, err = GetSimpleText(a.reader, "ISBN", a.out); err != nil {
		return err
	}
	return nil
}

func (a *App) AddBook(ctx context.Context) error {
	var b models.Book
	if err := a.promptBook(&b); err != nil {
		return err
	}

	id, err := a.books.Create(ctx, &b)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Book created:", id)
	return nil
}

func (a *App) EditBook(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Book ID", a.out)
	if err != nil {
		return err
	}

	var b models.Book
	if err := a.promptBook(&b); err != nil {
		return err
	}

	if err := a.books.Update(ctx, id, &b); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Book updated")
	return nil
}

func (a *App) DeleteBook(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Book ID", a.out)
	if err != nil {
		return err
	}

	if err := a.books.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Book deleted")
	return nil
}
