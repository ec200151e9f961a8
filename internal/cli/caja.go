package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/service"
	"github.com/fernando2902/peliculas-catalago/internal/ticket"
)

// NewCorteCommand previews or performs the daily close.
func NewCorteCommand(rootOpts *RootOptions) *cobra.Command {
	var guardar bool
	var imprimir bool

	cmd := &cobra.Command{
		Use:   "corte",
		Short: "Corte de caja del día",
		Long: `Calcula el resumen de caja del día: total de ventas, entradas y salidas.
Sin banderas solo muestra el resumen; con --guardar lo persiste en el
historial de cortes (reemplazando el corte previo de la misma fecha).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			svc := service.NewCajaService(st)

			var corte *model.CorteDiario
			if guardar {
				corte, err = svc.RealizarCorte(cmd.Context(), time.Now())
			} else {
				corte, err = svc.CorteDelDia(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Corte de caja %s\n", corte.Fecha)
			fmt.Fprintf(out, "  Ventas   (%d): $%s\n", len(corte.Ventas), corte.Totales.Ventas.StringFixed(2))
			fmt.Fprintf(out, "  Entradas (%d): $%s\n", len(corte.Entradas), corte.Totales.Entradas.StringFixed(2))
			fmt.Fprintf(out, "  Salidas  (%d): $%s\n", len(corte.Salidas), corte.Totales.Salidas.StringFixed(2))
			fmt.Fprintf(out, "  TOTAL EN CAJA: $%s\n", corte.Totales.Caja.StringFixed(2))

			if guardar {
				log.Info().Str("fecha", corte.Fecha).Msg("corte guardado")
			}
			if imprimir {
				tcfg, err := service.NewTicketConfigService(st).ObtenerConfig(cmd.Context())
				if err != nil {
					return err
				}
				ruta, err := ticket.GenerarTicketCorte(corte, tcfg, cfg.TicketDir)
				if err != nil {
					return err
				}
				log.Info().Str("archivo", ruta).Msg("ticket de corte generado")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&guardar, "guardar", false, "persistir el corte en el historial")
	cmd.Flags().BoolVar(&imprimir, "imprimir", false, "generar el ticket PDF del corte")
	return cmd
}
