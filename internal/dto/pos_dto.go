package dto

import "github.com/shopspring/decimal"

// ProductoRequest: alta de producto de venta. Precio must be positive;
// decimal amounts are validated in the service.
type ProductoRequest struct {
	Nombre string `validate:"required"`
	Precio decimal.Decimal
	Imagen string
}

// ProductoPuntosRequest: alta de producto del catálogo de canje.
type ProductoPuntosRequest struct {
	Nombre string `validate:"required"`
	Puntos int    `validate:"required,gt=0"`
	Stock  int    `validate:"required,gt=0"`
	Imagen string
}

// ClienteRequest: alta de cliente del programa de puntos.
type ClienteRequest struct {
	Nombre   string `validate:"required"`
	Email    string `validate:"required,email"`
	Telefono string `validate:"required"`
}

// MovimientoRequest: entrada o salida manual de efectivo.
type MovimientoRequest struct {
	Motivo   string `validate:"required"`
	Cantidad decimal.Decimal
}
