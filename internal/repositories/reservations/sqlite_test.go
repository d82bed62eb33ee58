package reservations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/acortes/libreserve/internal/common"
	"github.com/acortes/libreserve/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE reservations (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  book_id TEXT NOT NULL,
  date TEXT NOT NULL,
  duration_days INTEGER NOT NULL,
  max_return_date TEXT NOT NULL,
  reminder_sent INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func TestCreateAndRoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, &models.Reservation{
		UserID:        "u1",
		BookID:        "b1",
		Date:          "2026-08-19",
		DurationDays:  15,
		MaxReturnDate: "2026-09-03",
	})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-19", got.Date)
	assert.Equal(t, 15, got.DurationDays)
	assert.Equal(t, "2026-09-03", got.MaxReturnDate)
	assert.False(t, got.ReminderSent, "reminder flag defaults to false")

	_, err = r.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestFindByUser(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.Reservation{UserID: "u1", BookID: "b1", Date: "2026-01-01", DurationDays: 5, MaxReturnDate: "2026-01-06"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Reservation{UserID: "u2", BookID: "b2", Date: "2026-01-02", DurationDays: 5, MaxReturnDate: "2026-01-07"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Reservation{UserID: "u1", BookID: "b3", Date: "2026-01-03", DurationDays: 5, MaxReturnDate: "2026-01-08"})
	require.NoError(t, err)

	got, err := r.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, res := range got {
		assert.Equal(t, "u1", res.UserID)
	}

	none, err := r.FindByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMarkReminderSent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, &models.Reservation{UserID: "u", BookID: "b", Date: "2026-01-01", DurationDays: 3, MaxReturnDate: "2026-01-04"})
	require.NoError(t, err)

	require.NoError(t, r.MarkReminderSent(ctx, id, true))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.ReminderSent)

	assert.True(t, errors.Is(r.MarkReminderSent(ctx, "missing", true), common.ErrNotFound))
}

func TestUpdateAndDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, &models.Reservation{UserID: "u", BookID: "b", Date: "2026-01-01", DurationDays: 3, MaxReturnDate: "2026-01-04", ReminderSent: true})
	require.NoError(t, err)

	upd := &models.Reservation{UserID: "u", BookID: "b", Date: "2026-02-01", DurationDays: 10, MaxReturnDate: "2026-02-11", ReminderSent: false}
	require.NoError(t, r.Update(ctx, id, upd))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", got.Date)
	assert.Equal(t, 10, got.DurationDays)
	assert.Equal(t, "2026-02-11", got.MaxReturnDate)
	assert.False(t, got.ReminderSent)

	assert.True(t, errors.Is(r.Update(ctx, "missing", upd), common.ErrNotFound))

	require.NoError(t, r.Delete(ctx, id))
	assert.True(t, errors.Is(r.Delete(ctx, id), common.ErrNotFound))
}
