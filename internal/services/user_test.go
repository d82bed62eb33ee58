package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/acortes/libreserve/internal/common"
	"github.com/acortes/libreserve/internal/models"
	"github.com/acortes/libreserve/internal/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupUserService(t *testing.T) *UserService {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY, name TEXT NOT NULL, email TEXT NOT NULL,
  document TEXT NOT NULL UNIQUE, phone TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)

	return NewUserService(users.NewSQLiteRepository(db))
}

func TestUserService_CreateValidation(t *testing.T) {
	s := setupUserService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		u    *models.User
	}{
		{"missing name", &models.User{Email: "a@x", Document: "1"}},
		{"missing email", &models.User{Name: "a", Document: "1"}},
		{"missing document", &models.User{Name: "a", Email: "a@x"}},
		{"blank name", &models.User{Name: "   ", Email: "a@x", Document: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, tt.u)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
		})
	}

	id, err := s.Create(ctx, &models.User{Name: "a", Email: "a@x", Document: "1", Phone: "5"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestUserService_CrudFlow(t *testing.T) {
	s := setupUserService(t)
	ctx := context.Background()

	id, err := s.Create(ctx, &models.User{Name: "a", Email: "a@x", Document: "1"})
	require.NoError(t, err)

	u, err := s.FindByDocument(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	require.NoError(t, s.Update(ctx, id, &models.User{Name: "b", Email: "b@x", Document: "1"}))

	u, err = s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "b", u.Name)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.Delete(ctx, id))
	assert.True(t, errors.Is(s.Delete(ctx, id), common.ErrNotFound))
}
