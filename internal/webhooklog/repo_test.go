package webhooklog

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

func setupWebhookLogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS webhook_entregas (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  evento TEXT NOT NULL,
  url TEXT NOT NULL,
  sucesso INTEGER NOT NULL DEFAULT 0,
  dados TEXT,
  ultima_execucao DATETIME NOT NULL,
  data_criacao DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec("DELETE FROM webhook_entregas").Error)

	return db
}

func TestAppendRecordsAttempt(t *testing.T) {
	db := setupWebhookLogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	dados, _ := json.Marshal(map[string]any{"topic": "payment", "id": "555"})
	delivery, err := repo.Append(ctx, &models.WebhookDelivery{
		Evento:         "payment",
		URL:            "/api/mercadopago/webhook?topic=payment&id=555",
		Sucesso:        true,
		Dados:          dados,
		UltimaExecucao: time.Now(),
	})
	require.NoError(t, err)
	assert.NotZero(t, delivery.ID)
}

func TestFailedAttemptKeepsOwnRow(t *testing.T) {
	db := setupWebhookLogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now()
	failure, _ := json.Marshal(map[string]any{"error": "gateway timeout"})
	_, err := repo.Append(ctx, &models.WebhookDelivery{
		Evento:         "payment",
		URL:            "/api/mercadopago/webhook?topic=payment&id=555",
		Sucesso:        false,
		Dados:          failure,
		UltimaExecucao: now.Add(-time.Minute),
	})
	require.NoError(t, err)

	success, _ := json.Marshal(map[string]any{"status": "approved"})
	_, err = repo.Append(ctx, &models.WebhookDelivery{
		Evento:         "payment",
		URL:            "/api/mercadopago/webhook?topic=payment&id=555",
		Sucesso:        true,
		Dados:          success,
		UltimaExecucao: now,
	})
	require.NoError(t, err)

	list, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Sucesso)
	assert.False(t, list[1].Sucesso)
}
