package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nome      string          `gorm:"column:nome;not null" json:"nome"`
	Descricao string          `gorm:"column:descricao" json:"descricao"`
	Preco     decimal.Decimal `gorm:"column:preco;type:numeric(12,2);not null" json:"preco"`
	Moeda     string          `gorm:"column:moeda;not null;default:'BRL'" json:"moeda"`
	Ativo     bool            `gorm:"column:ativo;not null;default:true" json:"ativo"`
	CreatedAt time.Time       `gorm:"column:data_criacao;autoCreateTime" json:"dataCriacao"`
	UpdatedAt time.Time       `gorm:"column:data_atualizacao;autoUpdateTime" json:"dataAtualizacao"`
}

func (Product) TableName() string {
	return "produtos"
}
