package models

import (
	"encoding/json"
	"time"
)

// ActivityEntry feeds the dashboard activity list, most recent first.
type ActivityEntry struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Tipo      string          `gorm:"column:tipo;not null;index" json:"tipo"`
	Descricao string          `gorm:"column:descricao;not null" json:"descricao"`
	Metadados json.RawMessage `gorm:"column:metadados;type:jsonb" json:"metadados"`
	CreatedAt time.Time       `gorm:"column:data_criacao;autoCreateTime" json:"dataCriacao"`
}

func (ActivityEntry) TableName() string {
	return "atividades"
}
