package webhooksubs

import (
	"context"
	"errors"
	"testing"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSubsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS webhook_inscricoes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  url TEXT NOT NULL,
  evento TEXT NOT NULL,
  ativo INTEGER NOT NULL DEFAULT 1,
  data_criacao DATETIME,
  data_atualizacao DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec("DELETE FROM webhook_inscricoes").Error)

	return db
}

func TestSubscriptionLifecycle(t *testing.T) {
	db := setupSubsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	sub, err := repo.Create(ctx, &models.WebhookSubscription{
		Nome:   "ERP",
		URL:    "https://erp.exemplo.com/hooks",
		Evento: "payment",
		Ativo:  true,
	})
	require.NoError(t, err)
	require.NotZero(t, sub.ID)

	require.NoError(t, repo.Update(ctx, sub.ID, map[string]any{"ativo": false}))

	found, err := repo.FindByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, found.Ativo)

	require.NoError(t, repo.Delete(ctx, sub.ID))

	_, err = repo.FindByID(ctx, sub.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdateMissingSubscriptionReturnsNotFound(t *testing.T) {
	db := setupSubsTestDB(t)
	repo := NewRepository(db)

	err := repo.Update(context.Background(), 9999, map[string]any{"ativo": false})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
