package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCoreMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_core_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no core tables migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE transacoes",
		"CREATE UNIQUE INDEX idx_transacoes_referencia ON transacoes (referencia)",
		"status TEXT NOT NULL DEFAULT 'pending'",
		"moeda TEXT NOT NULL DEFAULT 'BRL'",
		"checkout_id BIGINT REFERENCES checkouts(id)",
		"DROP TABLE IF EXISTS transacoes",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestWebhookMigrationSplitsSubscriptionsFromDeliveries(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_webhook_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no webhook tables migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE webhook_inscricoes",
		"CREATE TABLE webhook_entregas",
		"sucesso BOOLEAN NOT NULL DEFAULT FALSE",
		"ultima_execucao TIMESTAMPTZ NOT NULL DEFAULT now()",
		"DROP TABLE IF EXISTS webhook_entregas",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
