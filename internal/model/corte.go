package model

import "github.com/shopspring/decimal"

// FechaCorte is the layout of the natural key of cortesDiarios.
const FechaCorte = "2006-01-02"

// TotalesCorte aggregates a day's movements. Caja = Ventas + Entradas - Salidas.
type TotalesCorte struct {
	Ventas   decimal.Decimal `json:"ventas"`
	Entradas decimal.Decimal `json:"entradas"`
	Salidas  decimal.Decimal `json:"salidas"`
	Caja     decimal.Decimal `json:"caja"`
}

// CorteDiario is a daily-close summary keyed by date. It copies the day's
// records; the source collections are never reset by a corte, so repeated
// cortes over the same range recount the same records.
type CorteDiario struct {
	Fecha    string       `gorm:"primaryKey" json:"fecha"`
	Ventas   []Venta      `gorm:"serializer:json" json:"ventas"`
	Entradas []Entrada    `gorm:"serializer:json" json:"entradas"`
	Salidas  []Salida     `gorm:"serializer:json" json:"salidas"`
	Totales  TotalesCorte `gorm:"serializer:json" json:"totales"`
}

func (CorteDiario) TableName() string { return "cortesDiarios" }
