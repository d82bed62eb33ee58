package reservations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acortes/libreserve/internal/common"
	"github.com/acortes/libreserve/internal/dbx"
	"github.com/acortes/libreserve/internal/models"
	"github.com/google/uuid"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, res *models.Reservation) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO reservations (id, user_id, book_id, date, duration_days, max_return_date, reminder_sent)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		id, res.UserID, res.BookID, res.Date, res.DurationDays, res.MaxReturnDate, res.ReminderSent)
	if err != nil {
		return "", fmt.Errorf("failed to insert reservation: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Reservation, error) {
	query := `SELECT id, user_id, book_id, date, duration_days, max_return_date, reminder_sent
	          FROM reservations ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select reservations: %w", err)
	}
	return scanAll(rows)
}

func (r *SQLiteRepository) FindByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	query := `SELECT id, user_id, book_id, date, duration_days, max_return_date, reminder_sent
	          FROM reservations WHERE user_id = ? ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select reservations: %w", err)
	}
	return scanAll(rows)
}

func scanAll(rows *sql.Rows) ([]models.Reservation, error) {
	defer rows.Close()

	var result []models.Reservation
	for rows.Next() {
		var item models.Reservation
		if err := rows.Scan(&item.ID, &item.UserID, &item.BookID,
			&item.Date, &item.DurationDays, &item.MaxReturnDate, &item.ReminderSent); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	query := `SELECT id, user_id, book_id, date, duration_days, max_return_date, reminder_sent
	          FROM reservations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	res := &models.Reservation{}
	if err := row.Scan(&res.ID, &res.UserID, &res.BookID,
		&res.Date, &res.DurationDays, &res.MaxReturnDate, &res.ReminderSent); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return res, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, res *models.Reservation) error {
	query := `UPDATE reservations SET user_id = ?, book_id = ?, date = ?, duration_days = ?,
	          max_return_date = ?, reminder_sent = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		res.UserID, res.BookID, res.Date, res.DurationDays, res.MaxReturnDate, res.ReminderSent, id)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) MarkReminderSent(ctx context.Context, id string, sent bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reservations SET reminder_sent = ? WHERE id = ?`, sent, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}
