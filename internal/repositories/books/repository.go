// Package books provides the persistence layer for catalogue entries.
package books

import (
	"context"

	"github.com/acortes/libreserve/internal/models"
)

// Repository describes CRUD operations for Book records.
type Repository interface {
	// Create inserts a new book and returns its repository-assigned id.
	Create(ctx context.Context, b *models.Book) (string, error)

	// GetAll returns all books.
	GetAll(ctx context.Context) ([]models.Book, error)

	// GetByID returns a book by id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Book, error)

	// Update replaces the stored fields of an existing book.
	Update(ctx context.Context, id string, b *models.Book) error

	// Delete removes a book. Existing reservations keep their reference.
	Delete(ctx context.Context, id string) error
}
