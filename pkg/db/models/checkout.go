package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Checkout is a shareable payment link. External_reference on gateway
// payments points back at a checkout id when the buyer came through one.
type Checkout struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID *uint           `gorm:"column:product_id;index" json:"productId"`
	Titulo    string          `gorm:"column:titulo;not null" json:"titulo"`
	Descricao string          `gorm:"column:descricao" json:"descricao"`
	Preco     decimal.Decimal `gorm:"column:preco;type:numeric(12,2);not null" json:"preco"`
	Moeda     string          `gorm:"column:moeda;not null;default:'BRL'" json:"moeda"`
	Ativo     bool            `gorm:"column:ativo;not null;default:true" json:"ativo"`
	CreatedAt time.Time       `gorm:"column:data_criacao;autoCreateTime" json:"dataCriacao"`
	UpdatedAt time.Time       `gorm:"column:data_atualizacao;autoUpdateTime" json:"dataAtualizacao"`
}

func (Checkout) TableName() string {
	return "checkouts"
}
