package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/acortes/libreserve/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func TestInitDatabase(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "library.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NotNil(t, repos.Users)
	require.NotNil(t, repos.Books)
	require.NotNil(t, repos.Reservations)

	// schema is usable after migration
	id, err := repos.Users.Create(ctx, &models.User{Name: "n", Email: "e", Document: "d"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// migrations are idempotent on an existing file
	_, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
}
