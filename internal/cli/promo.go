package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fernando2902/peliculas-catalago/internal/service"
	"github.com/fernando2902/peliculas-catalago/internal/share"
)

// NewPromoCommand renders the redemption catalog into a shareable HTML page.
func NewPromoCommand(rootOpts *RootOptions) *cobra.Command {
	var salida string

	cmd := &cobra.Command{
		Use:   "promo",
		Short: "Genera la página HTML con los productos de canje",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			productos, err := service.NewProductoService(st).ListarProductosPuntos(cmd.Context())
			if err != nil {
				return err
			}
			pagina, err := share.PaginaProductosCanje(productos)
			if err != nil {
				return err
			}
			if salida == "" {
				salida = filepath.Join(cfg.ExportDir, "productos_canje.html")
			}
			if err := os.WriteFile(salida, []byte(pagina), 0644); err != nil {
				return fmt.Errorf("escribir página de canje: %w", err)
			}
			log.Info().Str("archivo", salida).Int("productos", len(productos)).Msg("página de canje generada")
			return nil
		},
	}

	cmd.Flags().StringVarP(&salida, "salida", "o", "", "archivo de destino (default: productos_canje.html)")
	return cmd
}
