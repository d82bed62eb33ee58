// Package users provides the persistence layer for library members.
package users

import (
	"context"

	"github.com/acortes/libreserve/internal/models"
)

// Repository describes CRUD and query operations for User records.
type Repository interface {
	// Create inserts a new user and returns its repository-assigned id.
	Create(ctx context.Context, u *models.User) (string, error)

	// GetAll returns all users.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByID returns a user by id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// FindByDocument returns the user holding the given identity-document
	// number, or common.ErrNotFound.
	FindByDocument(ctx context.Context, document string) (*models.User, error)

	// Update replaces the stored fields of an existing user.
	Update(ctx context.Context, id string, u *models.User) error

	// Delete removes a user. Existing reservations keep their reference.
	Delete(ctx context.Context, id string) error
}
