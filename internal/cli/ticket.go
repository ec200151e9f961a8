package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fernando2902/peliculas-catalago/internal/service"
	"github.com/fernando2902/peliculas-catalago/internal/ticket"
)

// NewTicketCommand groups ticket utilities.
func NewTicketCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Utilidades de tickets de venta",
	}
	cmd.AddCommand(newTicketPruebaCommand(rootOpts))
	return cmd
}

func newTicketPruebaCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prueba",
		Short: "Genera un ticket de prueba con la configuración actual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			tcfg, err := service.NewTicketConfigService(st).ObtenerConfig(cmd.Context())
			if err != nil {
				return err
			}
			ruta, err := ticket.GenerarTicketVenta(ticket.VentaPrueba(), tcfg, cfg.TicketDir)
			if err != nil {
				return err
			}
			log.Info().Str("archivo", ruta).Msg("ticket de prueba generado")
			return nil
		},
	}
	return cmd
}
