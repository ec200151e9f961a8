package dto

// PeliculaRequest carries the form input for creating or editing a movie.
// At least one genre is mandatory; a request with zero genres is rejected
// before any store write.
type PeliculaRequest struct {
	Name         string   `validate:"required"`
	Description  string
	Genres       []string `validate:"required,min=1"`
	Trailer      string   `validate:"omitempty,url"`
	ReleaseYear  string
	Quality      string
	IsNewRelease bool
	CoverImage   string
}

// Orden de vistas para el catálogo.
const (
	VistasMas   = "most"
	VistasMenos = "least"
)

// FiltroPeliculas combines catalog predicates with logical AND; empty fields
// pass through. Vistas additionally sorts the filtered result.
type FiltroPeliculas struct {
	Busqueda string // substring of name, case-insensitive
	Genero   string // set membership in genres
	Calidad  string // exact match
	Anio     string // exact match
	Vistas   string // "", VistasMas, VistasMenos
}
