package models

import "time"

type Customer struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nome      string    `gorm:"column:nome;not null" json:"nome"`
	Email     string    `gorm:"column:email;not null;uniqueIndex:idx_clientes_email" json:"email"`
	Telefone  string    `gorm:"column:telefone" json:"telefone"`
	CreatedAt time.Time `gorm:"column:data_criacao;autoCreateTime" json:"dataCriacao"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"dataAtualizacao"`
}

func (Customer) TableName() string {
	return "clientes"
}
