package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernando2902/peliculas-catalago/internal/model"
)

func productoPrueba(nombre string, precio float64) model.Producto {
	return model.Producto{
		ID:     uuid.New(),
		Nombre: nombre,
		Precio: decimal.NewFromFloat(precio),
	}
}

func TestCarritoAgregarFusionaLineas(t *testing.T) {
	c := NuevoCarrito()
	refresco := productoPrueba("Refresco", 18.50)
	papas := productoPrueba("Papas", 22)

	c.Agregar(refresco)
	c.Agregar(papas)
	c.Agregar(refresco)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Cantidad)
	assert.Equal(t, "Refresco", items[0].Nombre)
	assert.Equal(t, 1, items[1].Cantidad)
}

func TestCarritoAjustarCantidadPisoUno(t *testing.T) {
	c := NuevoCarrito()
	p := productoPrueba("Refresco", 18.50)
	c.Agregar(p)

	c.AjustarCantidad(p.ID, +3)
	assert.Equal(t, 4, c.Items()[0].Cantidad)

	// Lowering below one leaves the line at its current quantity.
	c.AjustarCantidad(p.ID, -10)
	assert.Equal(t, 4, c.Items()[0].Cantidad)

	c.AjustarCantidad(p.ID, -3)
	assert.Equal(t, 1, c.Items()[0].Cantidad)
	c.AjustarCantidad(p.ID, -1)
	assert.Equal(t, 1, c.Items()[0].Cantidad)
}

func TestCarritoQuitar(t *testing.T) {
	c := NuevoCarrito()
	p := productoPrueba("Refresco", 18.50)
	c.Agregar(p)
	c.Agregar(productoPrueba("Papas", 22))

	c.Quitar(p.ID)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Papas", items[0].Nombre)

	// Quitar on an absent line is a no-op.
	c.Quitar(uuid.New())
	assert.Len(t, c.Items(), 1)
}

func TestCarritoTotalYPuntos(t *testing.T) {
	c := NuevoCarrito()
	p := productoPrueba("Refresco", 18.50)
	c.Agregar(p)
	c.Agregar(p) // 2 × 18.50 = 37.00
	c.Agregar(productoPrueba("Dulce", 5.75))

	assert.True(t, c.Total().Equal(decimal.NewFromFloat(42.75)))
	// Points are the floor of the total.
	assert.Equal(t, 42, c.PuntosAGanar())
}

func TestCarritoItemsRegresaCopia(t *testing.T) {
	c := NuevoCarrito()
	c.Agregar(productoPrueba("Refresco", 18.50))

	items := c.Items()
	items[0].Cantidad = 99

	assert.Equal(t, 1, c.Items()[0].Cantidad)
}
