package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entrada is a manual cash-in movement outside of sales.
type Entrada struct {
	ID       uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Fecha    time.Time       `gorm:"index" json:"fecha"`
	Motivo   string          `gorm:"not null" json:"motivo"`
	Cantidad decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cantidad"`
}

func (Entrada) TableName() string { return "entradas" }

// Salida is a manual cash-out movement.
type Salida struct {
	ID       uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Fecha    time.Time       `gorm:"index" json:"fecha"`
	Motivo   string          `gorm:"not null" json:"motivo"`
	Cantidad decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cantidad"`
}

func (Salida) TableName() string { return "salidas" }
