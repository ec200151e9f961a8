package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente accumulates Puntos through ventas tipo "cliente" and spends them in
// canjes. UUID identity: ids are never reused after a deletion.
type Cliente struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre   string    `gorm:"not null" json:"nombre"`
	Email    string    `gorm:"not null" json:"email"`
	Telefono string    `gorm:"not null" json:"telefono"`
	Puntos   int       `gorm:"not null;default:0" json:"puntos"`
}

func (Cliente) TableName() string { return "clientes" }

func (c *Cliente) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ClienteSnapshot is the frozen copy embedded in a Venta. Later mutations of
// the Cliente record must not alter historical sales, so the snapshot is a
// value copy, never a reference.
type ClienteSnapshot struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Telefono string    `json:"telefono"`
	Puntos   int       `json:"puntos"`
}

// Snapshot freezes the client's current state.
func (c *Cliente) Snapshot() *ClienteSnapshot {
	return &ClienteSnapshot{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Email:    c.Email,
		Telefono: c.Telefono,
		Puntos:   c.Puntos,
	}
}
