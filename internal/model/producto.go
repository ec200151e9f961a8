package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Producto is a sale-side product. Identity is a generated UUID; Nombre is a
// display field only and may repeat.
type Producto struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre string          `gorm:"index;not null" json:"nombre"`
	Precio decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	// Imagen is an optional data URI, stored verbatim.
	Imagen string `json:"imagen,omitempty"`
}

func (Producto) TableName() string { return "productos" }

func (p *Producto) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProductoPuntos is a redemption-catalog product: costs Puntos, stock floor 0.
type ProductoPuntos struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre string    `gorm:"index;not null" json:"nombre"`
	Puntos int       `gorm:"not null" json:"puntos"`
	Stock  int       `gorm:"not null;default:0" json:"stock"`
	Imagen string    `json:"imagen,omitempty"`
}

func (ProductoPuntos) TableName() string { return "productosPuntos" }

func (p *ProductoPuntos) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
