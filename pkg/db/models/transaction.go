package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors one real-world payment at the gateway. Referencia is the
// gateway-assigned payment id and is unique: repeated notifications for the
// same payment update the existing row instead of inserting a duplicate.
type Transaction struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CheckoutID   *uint           `gorm:"column:checkout_id;index" json:"checkoutId"`
	ClienteNome  string          `gorm:"column:cliente_nome;not null" json:"clienteNome"`
	ClienteEmail string          `gorm:"column:cliente_email;not null" json:"clienteEmail"`
	Valor        decimal.Decimal `gorm:"column:valor;type:numeric(12,2);not null" json:"valor"`
	Moeda        string          `gorm:"column:moeda;not null;default:'BRL'" json:"moeda"`
	Status       string          `gorm:"column:status;not null;default:'pending'" json:"status"`
	Metodo       string          `gorm:"column:metodo;not null" json:"metodo"`
	Referencia   string          `gorm:"column:referencia;not null;uniqueIndex:idx_transacoes_referencia" json:"referencia"`
	Metadata     json.RawMessage `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreatedAt    time.Time       `gorm:"column:data_criacao;autoCreateTime" json:"dataCriacao"`
	UpdatedAt    time.Time       `gorm:"column:data_atualizacao;autoUpdateTime" json:"dataAtualizacao"`
}

func (Transaction) TableName() string {
	return "transacoes"
}
