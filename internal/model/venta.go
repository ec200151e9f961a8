package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta tipos. Canjes share the ventas collection, discriminated by Tipo.
const (
	VentaComun   = "comun"
	VentaCliente = "cliente"
	VentaCanje   = "canje"
)

// ItemVenta is a cart line frozen into a venta. ProductoID keeps the stable
// identity; Nombre/Precio are copied at sale time so later product edits do
// not rewrite history.
type ItemVenta struct {
	ProductoID uuid.UUID       `json:"productoId"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
}

// Subtotal de la línea: precio × cantidad.
func (i ItemVenta) Subtotal() decimal.Decimal {
	return i.Precio.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// ItemCanje is the single redeemed product of a venta tipo canje.
type ItemCanje struct {
	ProductoID uuid.UUID `json:"productoId"`
	Nombre     string    `json:"nombre"`
	Puntos     int       `json:"puntos"`
}

// Venta is an immutable sale record. For tipo comun/cliente the Productos,
// Subtotal/Total/Efectivo/Cambio and PuntosGanados fields are populated; for
// tipo canje only Producto and the Puntos* snapshot fields carry meaning.
type Venta struct {
	ID    uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Fecha time.Time `gorm:"index" json:"fecha"`
	Tipo  string    `gorm:"index;not null" json:"tipo"`

	Cliente   *ClienteSnapshot `gorm:"serializer:json" json:"cliente,omitempty"`
	Productos []ItemVenta      `gorm:"serializer:json" json:"productos,omitempty"`
	Producto  *ItemCanje       `gorm:"serializer:json" json:"producto,omitempty"`

	Subtotal decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	Efectivo decimal.Decimal `gorm:"type:decimal(12,2)" json:"efectivo"`
	Cambio   decimal.Decimal `gorm:"type:decimal(12,2)" json:"cambio"`

	PuntosGanados int `json:"puntosGanados"`
	// Canje snapshot: balance before, cost, balance after. Frozen at
	// transaction time.
	PuntosAnteriores int `json:"puntosAnteriores,omitempty"`
	PuntosGastados   int `json:"puntosGastados,omitempty"`
	PuntosRestantes  int `json:"puntosRestantes,omitempty"`
}

func (Venta) TableName() string { return "ventas" }
