package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/dto"
	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/store"
)

type CatalogoService interface {
	CrearPelicula(ctx context.Context, req dto.PeliculaRequest) (*model.Movie, error)
	EditarPelicula(ctx context.Context, id uint, req dto.PeliculaRequest) (*model.Movie, error)
	EliminarPelicula(ctx context.Context, id uint) error
	ListarPeliculas(ctx context.Context) ([]model.Movie, error)
	BuscarPeliculas(ctx context.Context, filtro dto.FiltroPeliculas) ([]model.Movie, error)
	ObtenerPelicula(ctx context.Context, id uint) (*model.Movie, error)
	// RegistrarVista increments the view counter. A stale id is a logged
	// no-op, never a user-facing error.
	RegistrarVista(ctx context.Context, id uint) error
	AniosDisponibles(ctx context.Context) ([]string, error)
	ExportarCatalogo(ctx context.Context, w io.Writer) error
	ImportarCatalogo(ctx context.Context, r io.Reader) error
}

type catalogoService struct {
	store    *store.Store
	validate *validator.Validate
	now      func() time.Time
}

func NewCatalogoService(st *store.Store) CatalogoService {
	return &catalogoService{
		store:    st,
		validate: validator.New(),
		now:      time.Now,
	}
}

// ── Alta / edición ────────────────────────────────────────────────────────────

func (s *catalogoService) CrearPelicula(ctx context.Context, req dto.PeliculaRequest) (*model.Movie, error) {
	if err := s.validarPelicula(req); err != nil {
		return nil, err
	}

	movie := &model.Movie{
		Name:         req.Name,
		Description:  req.Description,
		Genres:       append([]string(nil), req.Genres...),
		Trailer:      req.Trailer,
		ReleaseYear:  req.ReleaseYear,
		Quality:      req.Quality,
		IsNewRelease: req.IsNewRelease,
		CoverImage:   req.CoverImage,
		DateAdded:    s.now(),
		Views:        0,
	}
	if err := s.store.Movies().Add(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// EditarPelicula deletes the old record and creates a fresh one, so the
// edited movie receives a NEW id. Intentional: this preserves the historical
// edit semantics of the catalog (see DESIGN.md).
func (s *catalogoService) EditarPelicula(ctx context.Context, id uint, req dto.PeliculaRequest) (*model.Movie, error) {
	if err := s.validarPelicula(req); err != nil {
		return nil, err
	}
	if _, err := s.store.Movies().Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.Movies().Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.CrearPelicula(ctx, req)
}

func (s *catalogoService) EliminarPelicula(ctx context.Context, id uint) error {
	return s.store.Movies().Delete(ctx, id)
}

func (s *catalogoService) validarPelicula(req dto.PeliculaRequest) error {
	if err := s.validate.Struct(req); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		if len(req.Genres) == 0 {
			fields["Genres"] = "selecciona al menos un género"
		}
		return apperror.NewValidation(fields)
	}
	return nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *catalogoService) ListarPeliculas(ctx context.Context) ([]model.Movie, error) {
	return s.store.Movies().GetAll(ctx)
}

func (s *catalogoService) ObtenerPelicula(ctx context.Context, id uint) (*model.Movie, error) {
	return s.store.Movies().Get(ctx, id)
}

func (s *catalogoService) BuscarPeliculas(ctx context.Context, filtro dto.FiltroPeliculas) ([]model.Movie, error) {
	all, err := s.store.Movies().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := FiltrarPeliculas(all, filtro)
	switch filtro.Vistas {
	case dto.VistasMas:
		OrdenarPorVistas(out, false)
	case dto.VistasMenos:
		OrdenarPorVistas(out, true)
	}
	return out, nil
}

func (s *catalogoService) RegistrarVista(ctx context.Context, id uint) error {
	movie, err := s.store.Movies().Get(ctx, id)
	if errors.Is(err, apperror.ErrNotFound) {
		log.Warn().Uint("id", id).Msg("registrar vista: película no encontrada")
		return nil
	}
	if err != nil {
		return err
	}
	movie.Views++
	return s.store.Movies().Put(ctx, movie)
}

func (s *catalogoService) AniosDisponibles(ctx context.Context) ([]string, error) {
	all, err := s.store.Movies().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return AniosDistintos(all), nil
}

// ── Filtros puros ─────────────────────────────────────────────────────────────
// These operate on in-memory sequences and never mutate their input, so the
// rendering collaborator can reuse them over any loaded working set.

// FiltrarPeliculas applies the catalog predicates with logical AND. An empty
// predicate passes everything through.
func FiltrarPeliculas(all []model.Movie, f dto.FiltroPeliculas) []model.Movie {
	busqueda := strings.ToLower(f.Busqueda)
	out := make([]model.Movie, 0, len(all))
	for _, m := range all {
		if busqueda != "" && !strings.Contains(strings.ToLower(m.Name), busqueda) {
			continue
		}
		if f.Genero != "" && !contiene(m.Genres, f.Genero) {
			continue
		}
		if f.Calidad != "" && m.Quality != f.Calidad {
			continue
		}
		if f.Anio != "" && m.ReleaseYear != f.Anio {
			continue
		}
		out = append(out, m)
	}
	return out
}

// OrdenarPorVistas sorts in place, stable, missing views counting as 0.
func OrdenarPorVistas(movies []model.Movie, ascendente bool) {
	sort.SliceStable(movies, func(i, j int) bool {
		if ascendente {
			return movies[i].Views < movies[j].Views
		}
		return movies[i].Views > movies[j].Views
	})
}

// AniosDistintos returns the deduplicated release years, newest first.
func AniosDistintos(all []model.Movie) []string {
	seen := map[string]struct{}{}
	years := make([]string, 0)
	for _, m := range all {
		if m.ReleaseYear == "" {
			continue
		}
		if _, ok := seen[m.ReleaseYear]; ok {
			continue
		}
		seen[m.ReleaseYear] = struct{}{}
		years = append(years, m.ReleaseYear)
	}
	sort.Slice(years, func(i, j int) bool {
		a, errA := strconv.Atoi(years[i])
		b, errB := strconv.Atoi(years[j])
		if errA == nil && errB == nil {
			return a > b
		}
		return years[i] > years[j]
	})
	return years
}

func contiene(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ── Exportar / importar ───────────────────────────────────────────────────────

// ExportarCatalogo writes the full movies collection as a pretty-printed bare
// JSON array, the exchange format of the catalog.
func (s *catalogoService) ExportarCatalogo(ctx context.Context, w io.Writer) error {
	movies, err := s.store.Movies().GetAll(ctx)
	if err != nil {
		return err
	}
	if movies == nil {
		movies = []model.Movie{}
	}
	data, err := json.MarshalIndent(movies, "", "  ")
	if err != nil {
		return fmt.Errorf("exportar catálogo: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ImportarCatalogo replaces the movies collection with the document's
// contents, preserving the imported ids. Fails fast when the top level is not
// an array; the clear+reload runs in a single transaction so a mid-import
// failure leaves the previous catalog intact.
func (s *catalogoService) ImportarCatalogo(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("leer archivo: %w", err)
	}

	// Shape check first: the top level must be an array. Unmarshal alone
	// would accept null as a nil slice and wipe the catalog.
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('[') {
		return apperror.NewValidation(map[string]string{
			"catalogo": "el archivo no contiene un catálogo válido",
		})
	}

	var movies []model.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return apperror.NewValidation(map[string]string{
			"catalogo": "el archivo no contiene un catálogo válido",
		})
	}

	return s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Movies().Clear(ctx); err != nil {
			return err
		}
		for i := range movies {
			if err := tx.Movies().Add(ctx, &movies[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
