package service

// Shared helpers for the service tests: a throwaway on-disk store and a
// frozen clock so date-dependent flows are deterministic.

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fernando2902/peliculas-catalago/internal/store"
)

var fechaFija = time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)

func nuevoStorePrueba(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "kiosco.db"))
	require.NoError(t, err)
	return st
}

func relojFijo() time.Time { return fechaFija }
