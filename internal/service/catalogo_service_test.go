package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/dto"
	"github.com/fernando2902/peliculas-catalago/internal/model"
)

func nuevoCatalogoPrueba(t *testing.T) CatalogoService {
	t.Helper()
	return &catalogoService{
		store:    nuevoStorePrueba(t),
		validate: validator.New(),
		now:      relojFijo,
	}
}

func peliculaValida(nombre string) dto.PeliculaRequest {
	return dto.PeliculaRequest{
		Name:        nombre,
		Description: "una película de prueba",
		Genres:      []string{"Acción"},
		ReleaseYear: "2024",
		Quality:     "HD",
	}
}

func TestCrearPelicula(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)
	ctx := context.Background()

	m, err := svc.CrearPelicula(ctx, peliculaValida("Matrix"))
	require.NoError(t, err)

	assert.NotZero(t, m.ID)
	assert.Equal(t, 0, m.Views)
	assert.Equal(t, fechaFija, m.DateAdded)

	got, err := svc.ObtenerPelicula(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Matrix", got.Name)
	assert.Equal(t, []string{"Acción"}, got.Genres)
}

func TestCrearPeliculaSinGenerosNoEscribe(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)
	ctx := context.Background()

	req := peliculaValida("Sin Género")
	req.Genres = nil

	_, err := svc.CrearPelicula(ctx, req)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	all, err := svc.ListarPeliculas(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEditarPeliculaGeneraNuevoID(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)
	ctx := context.Background()

	original, err := svc.CrearPelicula(ctx, peliculaValida("Versión 1"))
	require.NoError(t, err)

	editada, err := svc.EditarPelicula(ctx, original.ID, peliculaValida("Versión 2"))
	require.NoError(t, err)

	assert.NotEqual(t, original.ID, editada.ID)

	_, err = svc.ObtenerPelicula(ctx, original.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	all, err := svc.ListarPeliculas(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Versión 2", all[0].Name)
}

func TestEditarPeliculaInexistente(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)

	_, err := svc.EditarPelicula(context.Background(), 42, peliculaValida("Fantasma"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRegistrarVista(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)
	ctx := context.Background()

	m, err := svc.CrearPelicula(ctx, peliculaValida("Vista"))
	require.NoError(t, err)

	require.NoError(t, svc.RegistrarVista(ctx, m.ID))
	require.NoError(t, svc.RegistrarVista(ctx, m.ID))

	got, err := svc.ObtenerPelicula(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)
}

func TestRegistrarVistaPeliculaAusenteNoFalla(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)

	assert.NoError(t, svc.RegistrarVista(context.Background(), 999))
}

func TestBuscarPeliculas(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)
	ctx := context.Background()

	crear := func(nombre, genero, calidad, anio string, vistas int) {
		req := peliculaValida(nombre)
		req.Genres = []string{genero}
		req.Quality = calidad
		req.ReleaseYear = anio
		m, err := svc.CrearPelicula(ctx, req)
		require.NoError(t, err)
		for i := 0; i < vistas; i++ {
			require.NoError(t, svc.RegistrarVista(ctx, m.ID))
		}
	}
	crear("El Padrino", "Drama", "HD", "1972", 5)
	crear("Padrino II", "Drama", "4K", "1974", 2)
	crear("Toy Story", "Animación", "HD", "1995", 9)

	t.Run("filtro vacío regresa todo", func(t *testing.T) {
		out, err := svc.BuscarPeliculas(ctx, dto.FiltroPeliculas{})
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})

	t.Run("búsqueda es substring sin mayúsculas", func(t *testing.T) {
		out, err := svc.BuscarPeliculas(ctx, dto.FiltroPeliculas{Busqueda: "padrino"})
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("predicados se combinan con AND", func(t *testing.T) {
		out, err := svc.BuscarPeliculas(ctx, dto.FiltroPeliculas{Genero: "Drama", Calidad: "HD"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "El Padrino", out[0].Name)
	})

	t.Run("año exacto", func(t *testing.T) {
		out, err := svc.BuscarPeliculas(ctx, dto.FiltroPeliculas{Anio: "1974"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Padrino II", out[0].Name)
	})

	t.Run("orden por vistas descendente", func(t *testing.T) {
		out, err := svc.BuscarPeliculas(ctx, dto.FiltroPeliculas{Vistas: dto.VistasMas})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "Toy Story", out[0].Name)
		assert.Equal(t, "Padrino II", out[2].Name)
	})

	t.Run("orden por vistas ascendente", func(t *testing.T) {
		out, err := svc.BuscarPeliculas(ctx, dto.FiltroPeliculas{Vistas: dto.VistasMenos})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "Padrino II", out[0].Name)
	})
}

func TestAniosDistintos(t *testing.T) {
	movies := []model.Movie{
		{ReleaseYear: "1995"},
		{ReleaseYear: "2024"},
		{ReleaseYear: "1995"},
		{ReleaseYear: ""},
		{ReleaseYear: "2001"},
	}

	assert.Equal(t, []string{"2024", "2001", "1995"}, AniosDistintos(movies))
}

func TestOrdenarPorVistasEsEstable(t *testing.T) {
	movies := []model.Movie{
		{Name: "a", Views: 1},
		{Name: "b", Views: 1},
		{Name: "c", Views: 5},
	}
	OrdenarPorVistas(movies, false)

	assert.Equal(t, "c", movies[0].Name)
	// Equal view counts keep their original relative order.
	assert.Equal(t, "a", movies[1].Name)
	assert.Equal(t, "b", movies[2].Name)
}

func TestExportarImportarCatalogo(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)
	ctx := context.Background()

	_, err := svc.CrearPelicula(ctx, peliculaValida("Exportada"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportarCatalogo(ctx, &buf))

	// The exchange format is a bare JSON array.
	var exported []model.Movie
	require.NoError(t, json.Unmarshal(buf.Bytes(), &exported))
	require.Len(t, exported, 1)

	// Import into a fresh catalog preserving the original ids.
	destino := nuevoCatalogoPrueba(t)
	require.NoError(t, destino.ImportarCatalogo(ctx, bytes.NewReader(buf.Bytes())))

	got, err := destino.ObtenerPelicula(ctx, exported[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Exportada", got.Name)
}

func TestImportarCatalogoRechazaNoArray(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)
	ctx := context.Background()

	_, err := svc.CrearPelicula(ctx, peliculaValida("Sobrevive"))
	require.NoError(t, err)

	// null is the treacherous case: Unmarshal would accept it as a nil
	// slice and the import would wipe the catalog without error.
	for _, doc := range []string{`{"peliculas": []}`, `null`, `"catalogo"`, `42`, `no es json`} {
		err = svc.ImportarCatalogo(ctx, strings.NewReader(doc))
		require.Error(t, err, doc)
		assert.True(t, apperror.IsValidation(err), doc)
	}

	// The previous catalog is untouched on a rejected import.
	all, err := svc.ListarPeliculas(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestImportarCatalogoEsAtomico(t *testing.T) {
	svc := nuevoCatalogoPrueba(t)
	ctx := context.Background()

	_, err := svc.CrearPelicula(ctx, peliculaValida("Previa"))
	require.NoError(t, err)

	// Duplicate ids make the second insert fail mid-import.
	malo := `[{"id": 1, "name": "uno", "genres": ["Drama"]}, {"id": 1, "name": "dos", "genres": ["Drama"]}]`
	err = svc.ImportarCatalogo(ctx, strings.NewReader(malo))
	require.Error(t, err)

	all, err := svc.ListarPeliculas(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Previa", all[0].Name)
}
