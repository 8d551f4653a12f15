package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/shared/query"
)

func newTestDB(t *testing.T, tables ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "venda_test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(tables...))
	return db
}

func seedClients(t *testing.T, repo client.Repository, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, repo.Create(context.Background(), &client.Client{Name: name}))
	}
}

func clientNames(clients []*client.Client) []string {
	names := make([]string, len(clients))
	for i, c := range clients {
		names[i] = c.Name
	}
	return names
}

func TestClientRepository_SearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t, &models.ClientModel{})
	repo := NewClientRepository(db)
	seedClients(t, repo, "Ana López", "José Pérez", "Bob Smith")

	clients, total, err := repo.List(context.Background(), query.NewBaseFilter(query.WithSearch("ANA")))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana López", clients[0].Name)

	// Uppercase accented terms fold on the way in.
	clients, total, err = repo.List(context.Background(), query.NewBaseFilter(query.WithSearch("PÉREZ")))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, clients, 1)
	assert.Equal(t, "José Pérez", clients[0].Name)

	_, total, err = repo.List(context.Background(), query.NewBaseFilter(query.WithSearch("nadie")))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestClientRepository_ListPagination(t *testing.T) {
	db := newTestDB(t, &models.ClientModel{})
	repo := NewClientRepository(db)
	seedClients(t, repo, "c1", "c2", "c3", "c4", "c5")

	clients, total, err := repo.List(context.Background(), query.NewBaseFilter(
		query.WithPage(2, 2),
		query.WithSort("name", "asc"),
	))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []string{"c3", "c4"}, clientNames(clients))

	clients, total, err = repo.List(context.Background(), query.NewBaseFilter(
		query.WithPage(4, 2),
		query.WithSort("name", "asc"),
	))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total, "the total is unaffected by the page window")
	assert.Empty(t, clients)
}

func TestClientRepository_SortFieldIsAllowlisted(t *testing.T) {
	db := newTestDB(t, &models.ClientModel{})
	repo := NewClientRepository(db)
	seedClients(t, repo, "b", "a", "c")

	clients, _, err := repo.List(context.Background(), query.NewBaseFilter(
		query.WithSort("name", "desc"),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, clientNames(clients))

	// Unknown sort fields fall back to the default order instead of reaching SQL.
	clients, _, err = repo.List(context.Background(), query.NewBaseFilter(
		query.WithSort("name; DROP TABLE clients", "asc"),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, clientNames(clients))
}
