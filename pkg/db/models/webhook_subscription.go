package models

import "time"

// WebhookSubscription is a user-configured outbound webhook shown in the
// dashboard. It shares nothing with WebhookDelivery: subscriptions are
// configuration, deliveries are history.
type WebhookSubscription struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nome      string    `gorm:"column:nome;not null" json:"nome"`
	URL       string    `gorm:"column:url;not null" json:"url"`
	Evento    string    `gorm:"column:evento;not null" json:"evento"`
	Ativo     bool      `gorm:"column:ativo;not null;default:true" json:"ativo"`
	CreatedAt time.Time `gorm:"column:data_criacao;autoCreateTime" json:"dataCriacao"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"dataAtualizacao"`
}

func (WebhookSubscription) TableName() string {
	return "webhook_inscricoes"
}
