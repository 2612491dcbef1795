package customers

import (
	"context"
	"testing"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCustomersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS clientes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  telefone TEXT,
  data_criacao DATETIME,
  data_atualizacao DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec("DELETE FROM clientes").Error)

	return db
}

func TestUpsertByEmailKeepsSingleRow(t *testing.T) {
	db := setupCustomersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.UpsertByEmail(ctx, &models.Customer{
		Nome:  "Maria",
		Email: "maria@exemplo.com",
	})
	require.NoError(t, err)

	second, err := repo.UpsertByEmail(ctx, &models.Customer{
		Nome:     "Maria Souza",
		Email:    "maria@exemplo.com",
		Telefone: "+55 11 99999-0000",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Maria Souza", second.Nome)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
