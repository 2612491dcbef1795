package activity

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupActivityTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS atividades (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  tipo TEXT NOT NULL,
  descricao TEXT NOT NULL,
  metadados TEXT,
  data_criacao DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec("DELETE FROM atividades").Error)

	return db
}

func TestAppendStoresEntry(t *testing.T) {
	db := setupActivityTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	meta, _ := json.Marshal(map[string]any{"referencia": "555"})
	entry, err := repo.Append(ctx, &models.ActivityEntry{
		Tipo:      "pagamento_aprovado",
		Descricao: "Pagamento 555 aprovado",
		Metadados: meta,
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)

	list, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pagamento_aprovado", list[0].Tipo)
}

func TestListReturnsMostRecentFirst(t *testing.T) {
	db := setupActivityTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Append(ctx, &models.ActivityEntry{
		Tipo:      "pagamento_aprovado",
		Descricao: "antigo",
		CreatedAt: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	_, err = repo.Append(ctx, &models.ActivityEntry{
		Tipo:      "pagamento_aprovado",
		Descricao: "recente",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	list, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "recente", list[0].Descricao)
}
