package models

import (
	"encoding/json"
	"time"
)

// WebhookDelivery is the append-only log of inbound gateway notifications, one
// row per processing attempt. Rows are never mutated; failures carry an
// {"error": ...} payload in Dados.
type WebhookDelivery struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Evento         string          `gorm:"column:evento;not null;index" json:"evento"`
	URL            string          `gorm:"column:url;not null" json:"url"`
	Sucesso        bool            `gorm:"column:sucesso;not null" json:"sucesso"`
	Dados          json.RawMessage `gorm:"column:dados;type:jsonb" json:"dados"`
	UltimaExecucao time.Time       `gorm:"column:ultima_execucao;not null" json:"ultimaExecucao"`
	CreatedAt      time.Time       `gorm:"column:data_criacao;autoCreateTime" json:"dataCriacao"`
}

func (WebhookDelivery) TableName() string {
	return "webhook_entregas"
}
