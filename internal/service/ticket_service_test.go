package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/model"
)

func TestObtenerConfigSinGuardarRegresaDefaults(t *testing.T) {
	svc := NewTicketConfigService(nuevoStorePrueba(t))

	cfg, err := svc.ObtenerConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Mi Tienda", cfg.NombreTienda)
	assert.Equal(t, "monospace", cfg.Fuente)
	assert.Equal(t, "11", cfg.TamanoFuente)
	assert.False(t, cfg.Negrita)
}

func TestGuardarConfigEsSingleton(t *testing.T) {
	st := nuevoStorePrueba(t)
	svc := NewTicketConfigService(st)
	ctx := context.Background()

	require.NoError(t, svc.GuardarConfig(ctx, model.ConfigTicket{
		NombreTienda: "Kiosco Centro",
		Encabezado:   "¡Gracias por su visita!",
		Fuente:       "serif",
		TamanoFuente: "12",
		Negrita:      true,
	}))
	// A second save replaces, never accumulates.
	require.NoError(t, svc.GuardarConfig(ctx, model.ConfigTicket{
		ID:           99, // ignored: the singleton key is fixed
		NombreTienda: "Kiosco Norte",
	}))

	n, err := st.ConfigTicket().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	cfg, err := svc.ObtenerConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ConfigTicketID, cfg.ID)
	assert.Equal(t, "Kiosco Norte", cfg.NombreTienda)
}

func TestGuardarConfigRequiereNombre(t *testing.T) {
	svc := NewTicketConfigService(nuevoStorePrueba(t))

	err := svc.GuardarConfig(context.Background(), model.ConfigTicket{})
	assert.True(t, apperror.IsValidation(err))
}
