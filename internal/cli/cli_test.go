package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/store"
)

func ejecutar(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRespaldoExportarImportar(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kiosco.db")
	archivo := filepath.Join(dir, "respaldo.json")

	st, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, st.Productos().Add(context.Background(), &model.Producto{
		Nombre: "Refresco", Precio: decimal.NewFromFloat(18.50),
	}))

	_, err = ejecutar(t, "--db", db, "respaldo", "exportar", "-o", archivo)
	require.NoError(t, err)

	data, err := os.ReadFile(archivo)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "productos")

	// Import into a fresh database.
	db2 := filepath.Join(dir, "kiosco2.db")
	_, err = ejecutar(t, "--db", db2, "respaldo", "importar", archivo)
	require.NoError(t, err)

	st2, err := store.Open(db2)
	require.NoError(t, err)
	n, err := st2.Productos().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCortePreviewNoPersiste(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kiosco.db")
	_, err := store.Open(db)
	require.NoError(t, err)

	out, err := ejecutar(t, "--db", db, "corte")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL EN CAJA")

	st, err := store.Open(db)
	require.NoError(t, err)
	n, err := st.CortesDiarios().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCorteGuardar(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kiosco.db")
	_, err := store.Open(db)
	require.NoError(t, err)

	_, err = ejecutar(t, "--db", db, "corte", "--guardar")
	require.NoError(t, err)

	st, err := store.Open(db)
	require.NoError(t, err)
	n, err := st.CortesDiarios().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRespaldoImportarArchivoInexistente(t *testing.T) {
	db := filepath.Join(t.TempDir(), "kiosco.db")

	_, err := ejecutar(t, "--db", db, "respaldo", "importar", "/no/existe.json")
	assert.Error(t, err)
}

func TestCatalogoCompartir(t *testing.T) {
	db := filepath.Join(t.TempDir(), "kiosco.db")
	st, err := store.Open(db)
	require.NoError(t, err)

	pelicula := &model.Movie{Name: "Matrix", Genres: []string{"Acción"}}
	require.NoError(t, st.Movies().Add(context.Background(), pelicula))

	out, err := ejecutar(t, "--db", db, "catalogo", "compartir", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "https://wa.me/?text=")

	_, err = ejecutar(t, "--db", db, "catalogo", "compartir", "999")
	assert.Error(t, err)
}

func TestPromoGeneraHTML(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kiosco.db")
	archivo := filepath.Join(dir, "promo.html")

	st, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, st.ProductosPuntos().Add(context.Background(), &model.ProductoPuntos{
		Nombre: "Taza", Puntos: 30, Stock: 2,
	}))

	_, err = ejecutar(t, "--db", db, "promo", "-o", archivo)
	require.NoError(t, err)

	data, err := os.ReadFile(archivo)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Taza")
}

func TestAlmacenamiento(t *testing.T) {
	db := filepath.Join(t.TempDir(), "kiosco.db")
	_, err := store.Open(db)
	require.NoError(t, err)

	out, err := ejecutar(t, "--db", db, "almacenamiento")
	require.NoError(t, err)
	assert.Contains(t, out, "Clientes")
	assert.Contains(t, out, "Tamaño de archivo")
}
