// Package ticket renders printable documents (venta, canje, corte de caja)
// from immutable records plus the ConfigTicket singleton. 80mm thermal
// receipt geometry.
package ticket

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/fernando2902/peliculas-catalago/internal/model"
)

const (
	anchoTicket = 80.0 // mm
	margen      = 5.0
)

// familia maps the config font family onto fpdf's core fonts.
func familia(cfg model.ConfigTicket) string {
	switch cfg.Fuente {
	case "monospace", "Courier New":
		return "Courier"
	case "serif", "Times New Roman":
		return "Times"
	default:
		return "Helvetica"
	}
}

func tamano(cfg model.ConfigTicket) float64 {
	if n, err := strconv.Atoi(cfg.TamanoFuente); err == nil && n > 0 {
		return float64(n)
	}
	return 11
}

func estilo(cfg model.ConfigTicket) string {
	if cfg.Negrita {
		return "B"
	}
	return ""
}

type renderer struct {
	pdf   *fpdf.Fpdf
	cfg   model.ConfigTicket
	fam   string
	size  float64
	style string
	ancho float64 // content width
}

func nuevoRenderer(cfg model.ConfigTicket) *renderer {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: anchoTicket, Ht: 200},
	})
	pdf.SetMargins(margen, margen, margen)
	pdf.SetAutoPageBreak(true, margen)
	pdf.AddPage()
	return &renderer{
		pdf:   pdf,
		cfg:   cfg,
		fam:   familia(cfg),
		size:  tamano(cfg),
		style: estilo(cfg),
		ancho: anchoTicket - 2*margen,
	}
}

func (r *renderer) encabezado(subtitulo string, fecha time.Time) {
	r.pdf.SetFont(r.fam, "B", r.size+2)
	r.pdf.CellFormat(r.ancho, 6, r.cfg.NombreTienda, "", 1, "C", false, 0, "")
	r.pdf.SetFont(r.fam, r.style, r.size)
	r.pdf.CellFormat(r.ancho, 5, subtitulo, "", 1, "C", false, 0, "")
	r.pdf.CellFormat(r.ancho, 5, fecha.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	r.separador()
	if r.cfg.Encabezado != "" {
		r.pdf.MultiCell(r.ancho, 4, r.cfg.Encabezado, "", "C", false)
		r.separador()
	}
}

func (r *renderer) pie(despedida string) {
	if r.cfg.Pie != "" {
		r.separador()
		r.pdf.MultiCell(r.ancho, 4, r.cfg.Pie, "", "C", false)
	}
	r.separador()
	r.pdf.SetFont(r.fam, r.style, r.size-1)
	r.pdf.CellFormat(r.ancho, 4, despedida, "", 1, "C", false, 0, "")
	r.pdf.CellFormat(r.ancho, 4, "Vuelva pronto", "", 1, "C", false, 0, "")
}

func (r *renderer) separador() {
	r.pdf.Ln(1)
	r.pdf.SetDashPattern([]float64{1, 1}, 0)
	r.pdf.Line(margen, r.pdf.GetY(), anchoTicket-margen, r.pdf.GetY())
	r.pdf.SetDashPattern([]float64{}, 0)
	r.pdf.Ln(2)
}

func (r *renderer) linea(texto string) {
	r.pdf.SetFont(r.fam, r.style, r.size)
	r.pdf.CellFormat(r.ancho, 4.5, texto, "", 1, "L", false, 0, "")
}

func (r *renderer) montoDerecha(etiqueta string, monto decimal.Decimal) {
	r.pdf.SetFont(r.fam, r.style, r.size)
	r.pdf.CellFormat(r.ancho*0.6, 4.5, etiqueta, "", 0, "L", false, 0, "")
	r.pdf.CellFormat(r.ancho*0.4, 4.5, "$"+monto.StringFixed(2), "", 1, "R", false, 0, "")
}

func (r *renderer) guardar(dir, nombre string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("ticket: crear directorio: %w", err)
	}
	ruta := filepath.Join(dir, nombre)
	if err := r.pdf.OutputFileAndClose(ruta); err != nil {
		return "", fmt.Errorf("ticket: escribir archivo: %w", err)
	}
	return ruta, nil
}

// GenerarTicketVenta renders a comun/cliente sale ticket into dir and returns
// the file path.
func GenerarTicketVenta(venta *model.Venta, cfg model.ConfigTicket, dir string) (string, error) {
	r := nuevoRenderer(cfg)
	r.encabezado("Ticket de Venta", venta.Fecha)

	if venta.Cliente != nil {
		r.linea("Cliente: " + venta.Cliente.Nombre)
		r.separador()
	}

	r.linea("PRODUCTOS:")
	for _, item := range venta.Productos {
		nombre := item.Nombre
		if len([]rune(nombre)) > 20 {
			nombre = string([]rune(nombre)[:17]) + "..."
		}
		r.linea(nombre)
		r.linea(fmt.Sprintf("  %d x $%s = $%s",
			item.Cantidad, item.Precio.StringFixed(2), item.Subtotal().StringFixed(2)))
	}

	r.separador()
	r.montoDerecha("Subtotal:", venta.Subtotal)
	r.montoDerecha("Total:", venta.Total)
	r.montoDerecha("Efectivo:", venta.Efectivo)
	r.montoDerecha("Cambio:", venta.Cambio)

	r.pie("¡Gracias por su compra!")
	return r.guardar(dir, fmt.Sprintf("ticket_venta_%d.pdf", venta.ID))
}

// GenerarTicketCanje renders a redemption ticket with the frozen points
// snapshot.
func GenerarTicketCanje(canje *model.Venta, cfg model.ConfigTicket, dir string) (string, error) {
	r := nuevoRenderer(cfg)
	r.encabezado("Ticket de Canje", canje.Fecha)

	if canje.Cliente != nil {
		r.linea("Cliente: " + canje.Cliente.Nombre)
		r.separador()
	}
	if canje.Producto != nil {
		r.linea("PRODUCTO CANJEADO:")
		r.linea(canje.Producto.Nombre)
		r.separador()
	}
	r.linea(fmt.Sprintf("Puntos anteriores: %d", canje.PuntosAnteriores))
	r.linea(fmt.Sprintf("Puntos gastados: %d", canje.PuntosGastados))
	r.linea(fmt.Sprintf("Puntos restantes: %d", canje.PuntosRestantes))

	r.pie("¡Gracias por su canje!")
	return r.guardar(dir, fmt.Sprintf("ticket_canje_%d.pdf", canje.ID))
}

// GenerarTicketCorte renders the daily-close summary.
func GenerarTicketCorte(corte *model.CorteDiario, cfg model.ConfigTicket, dir string) (string, error) {
	r := nuevoRenderer(cfg)
	r.pdf.SetFont(r.fam, "B", r.size+2)
	r.pdf.CellFormat(r.ancho, 6, cfg.NombreTienda, "", 1, "C", false, 0, "")
	r.pdf.SetFont(r.fam, r.style, r.size)
	r.pdf.CellFormat(r.ancho, 5, "CORTE DE CAJA", "", 1, "C", false, 0, "")
	r.pdf.CellFormat(r.ancho, 5, corte.Fecha, "", 1, "C", false, 0, "")
	r.separador()

	r.linea("RESUMEN DE VENTAS")
	for i, v := range corte.Ventas {
		nombre := "-"
		if v.Cliente != nil {
			nombre = v.Cliente.Nombre
		}
		r.linea(fmt.Sprintf("%d. %s %s", i+1, v.Fecha.Format("15:04"), v.Tipo))
		r.linea(fmt.Sprintf("   %s  $%s", nombre, v.Total.StringFixed(2)))
	}
	r.montoDerecha("Total Ventas:", corte.Totales.Ventas)
	r.separador()

	r.linea("ENTRADAS DE EFECTIVO")
	for i, e := range corte.Entradas {
		r.linea(fmt.Sprintf("%d. %s  $%s", i+1, e.Motivo, e.Cantidad.StringFixed(2)))
	}
	r.montoDerecha("Total Entradas:", corte.Totales.Entradas)
	r.separador()

	r.linea("SALIDAS DE EFECTIVO")
	for i, sal := range corte.Salidas {
		r.linea(fmt.Sprintf("%d. %s  $%s", i+1, sal.Motivo, sal.Cantidad.StringFixed(2)))
	}
	r.montoDerecha("Total Salidas:", corte.Totales.Salidas)
	r.separador()

	r.pdf.SetFont(r.fam, "B", r.size+2)
	r.pdf.CellFormat(r.ancho, 6, "TOTAL EN CAJA: $"+corte.Totales.Caja.StringFixed(2), "", 1, "R", false, 0, "")
	r.separador()
	r.pdf.SetFont(r.fam, r.style, r.size)
	r.pdf.CellFormat(r.ancho, 4, "Fin del Corte de Caja", "", 1, "C", false, 0, "")

	return r.guardar(dir, fmt.Sprintf("corte_%s.pdf", corte.Fecha))
}

// VentaPrueba builds a sample sale used to preview the ticket layout.
func VentaPrueba() *model.Venta {
	return &model.Venta{
		Fecha: time.Now(),
		Tipo:  model.VentaComun,
		Cliente: &model.ClienteSnapshot{
			Nombre: "Cliente de Prueba",
			Puntos: 100,
		},
		Productos: []model.ItemVenta{
			{Nombre: "Producto de Prueba 1", Cantidad: 2, Precio: decimal.NewFromFloat(50.00)},
			{Nombre: "Producto de Prueba 2 con nombre muy largo para probar el truncamiento",
				Cantidad: 1, Precio: decimal.NewFromFloat(75.50)},
		},
		Subtotal:      decimal.NewFromFloat(175.50),
		Total:         decimal.NewFromFloat(175.50),
		Efectivo:      decimal.NewFromFloat(200.00),
		Cambio:        decimal.NewFromFloat(24.50),
		PuntosGanados: 175,
	}
}
