// Package reservations provides the persistence layer for reservation
// records, including the persisted reminder flag that guarantees
// at-most-once reminder delivery.
package reservations

import (
	"context"

	"github.com/acortes/libreserve/internal/models"
)

// Repository describes CRUD and query operations for Reservation records.
type Repository interface {
	// Create inserts a new reservation and returns its repository-assigned
	// id. The caller is responsible for having computed MaxReturnDate.
	Create(ctx context.Context, r *models.Reservation) (string, error)

	// GetAll returns all reservations.
	GetAll(ctx context.Context) ([]models.Reservation, error)

	// GetByID returns a reservation by id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)

	// FindByUser returns all reservations referencing the given user id.
	FindByUser(ctx context.Context, userID string) ([]models.Reservation, error)

	// Update replaces the stored fields of an existing reservation.
	Update(ctx context.Context, id string, r *models.Reservation) error

	// MarkReminderSent persists the reminder flag for a reservation.
	MarkReminderSent(ctx context.Context, id string, sent bool) error

	// Delete removes a reservation.
	Delete(ctx context.Context, id string) error
}
