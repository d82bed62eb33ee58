package books

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

func (r *SQLiteRepository) Create(ctx context.Context, b *models.Book) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO books (id, title, author, isbn) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, id, b.Title, b.Author, b.ISBN)
	if err != nil {
		return "", fmt.Errorf("failed to insert book: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	query := `SELECT id, title, author, isbn FROM books ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select books: %w", err)
	}
	defer rows.Close()

	var result []models.Book
	for rows.Next() {
		var item models.Book
		if err := rows.Scan(&item.ID, &item.Title, &item.Author, &item.ISBN); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	query := `SELECT id, title, author, isbn FROM books WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	b := &models.Book{}
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return b, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, b *models.Book) error {
	query := `UPDATE books SET title = ?, author = ?, isbn = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, b.Title, b.Author, b.ISBN, id)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
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
