// Package apperror provides the standardized error kinds used across both
// applications. Domain services return these so that callers (CLI, UI glue)
// can distinguish validation failures from store failures without inspecting
// message strings.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates the record for the given key no longer exists.
// Operations like RegistrarVista treat it as a logged no-op.
var ErrNotFound = errors.New("registro no encontrado")

// ErrMontoInsuficiente: efectivo recibido menor al total de la venta.
var ErrMontoInsuficiente = errors.New("el monto recibido es insuficiente")

// ErrPuntosInsuficientes: el cliente no cubre el costo en puntos del canje.
var ErrPuntosInsuficientes = errors.New("el cliente no tiene suficientes puntos")

// ErrSinStock: el producto de canje no tiene unidades disponibles.
var ErrSinStock = errors.New("no hay stock disponible de este producto")

// ValidationError aggregates per-field validation failures. No state is
// mutated when one is returned.
type ValidationError struct {
	Detail string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Detail
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Detail + " (" + strings.Join(parts, "; ") + ")"
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "error de validacion", Fields: fields}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Store wraps an underlying persistence failure with the operation name.
func Store(op string, err error) error {
	return fmt.Errorf("almacenamiento: %s: %w", op, err)
}
