package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fernando2902/peliculas-catalago/internal/model"
)

// Carrito is the in-memory ordered cart. Lines are keyed by the stable
// product id; adding a product already in the cart increments its quantity
// instead of duplicating the line.
type Carrito struct {
	items []model.ItemVenta
}

func NuevoCarrito() *Carrito { return &Carrito{} }

// Agregar adds one unit of p, merging with an existing line when present.
func (c *Carrito) Agregar(p model.Producto) {
	for i := range c.items {
		if c.items[i].ProductoID == p.ID {
			c.items[i].Cantidad++
			return
		}
	}
	c.items = append(c.items, model.ItemVenta{
		ProductoID: p.ID,
		Nombre:     p.Nombre,
		Precio:     p.Precio,
		Cantidad:   1,
	})
}

// AjustarCantidad applies delta to the line's quantity with floor 1.
func (c *Carrito) AjustarCantidad(productoID uuid.UUID, delta int) {
	for i := range c.items {
		if c.items[i].ProductoID == productoID {
			if n := c.items[i].Cantidad + delta; n >= 1 {
				c.items[i].Cantidad = n
			}
			return
		}
	}
}

// Quitar removes the line entirely.
func (c *Carrito) Quitar(productoID uuid.UUID) {
	for i := range c.items {
		if c.items[i].ProductoID == productoID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the lines in insertion order.
func (c *Carrito) Items() []model.ItemVenta {
	return append([]model.ItemVenta(nil), c.items...)
}

func (c *Carrito) Vacio() bool { return len(c.items) == 0 }

// Vaciar clears the cart. Called by the sale flow on success only.
func (c *Carrito) Vaciar() { c.items = nil }

// Total = Σ precio × cantidad.
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// PuntosAGanar = floor(total).
func (c *Carrito) PuntosAGanar() int {
	return int(c.Total().Floor().IntPart())
}
