// Package share builds shareable documents from catalog and POS records:
// a WhatsApp message for a movie and a standalone HTML promo page for the
// redemption catalog. Pure formatting; opening the link or saving the file
// is the caller's job.
package share

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/fernando2902/peliculas-catalago/internal/model"
)

// MensajePelicula builds the WhatsApp share text for a movie.
func MensajePelicula(m *model.Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎬 *%s*\n\n", m.Name)
	fmt.Fprintf(&b, "📝 *Descripción:*\n%s\n\n", m.Description)
	fmt.Fprintf(&b, "🎭 *Géneros:* %s\n", strings.Join(m.Genres, ", "))
	fmt.Fprintf(&b, "📅 *Año:* %s\n", m.ReleaseYear)
	fmt.Fprintf(&b, "🎥 *Calidad:* %s\n", m.Quality)
	if m.IsNewRelease {
		b.WriteString("⭐ *ESTRENO*\n")
	}
	fmt.Fprintf(&b, "👁️ *Vistas:* %d\n", m.Views)
	if m.Trailer != "" {
		fmt.Fprintf(&b, "\n🎬 *Trailer:* %s", m.Trailer)
	}
	return b.String()
}

// EnlaceWhatsApp wraps a message into a wa.me link.
func EnlaceWhatsApp(mensaje string) string {
	return "https://wa.me/?text=" + url.QueryEscape(mensaje)
}

var plantillaCanje = template.Must(template.New("canje").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <title>{{.Titulo}}</title>
    <style>
        body { font-family: Arial, sans-serif; background: #f4f6fb; color: #222; margin: 0; padding: 0; }
        .container { max-width: 600px; margin: 40px auto; background: #fff; border-radius: 12px; padding: 32px 24px; }
        h1 { text-align: center; color: #21c87a; margin-bottom: 32px; }
        .producto { display: flex; align-items: center; gap: 16px; margin-bottom: 18px; background: #f8f9fa; border-radius: 8px; padding: 10px; }
        .puntos { color: #21c87a; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Titulo}}</h1>
        {{range .Productos}}<div class="producto">
            {{if .Imagen}}<img src="{{.Imagen}}" alt="{{.Nombre}}" width="76">{{end}}
            <div>
                <div><strong>{{.Nombre}}</strong></div>
                <div class="puntos">{{.Puntos}} puntos</div>
            </div>
        </div>
        {{end}}
    </div>
</body>
</html>
`))

type productoVista struct {
	Nombre string
	Puntos int
	// Imagen is a data URI; template.URL keeps the autoescaper from
	// rewriting it to #ZgotmplZ.
	Imagen template.URL
}

// PaginaProductosCanje renders the redemption catalog into a standalone HTML
// document for sharing with clients.
func PaginaProductosCanje(productos []model.ProductoPuntos) (string, error) {
	vistas := make([]productoVista, 0, len(productos))
	for _, p := range productos {
		vistas = append(vistas, productoVista{
			Nombre: p.Nombre,
			Puntos: p.Puntos,
			Imagen: template.URL(p.Imagen),
		})
	}

	var b strings.Builder
	err := plantillaCanje.Execute(&b, struct {
		Titulo    string
		Productos []productoVista
	}{
		Titulo:    "Acumula puntos con tus compras y gana",
		Productos: vistas,
	})
	if err != nil {
		return "", fmt.Errorf("generar página de canje: %w", err)
	}
	return b.String(), nil
}
