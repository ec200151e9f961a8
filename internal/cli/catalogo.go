package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fernando2902/peliculas-catalago/internal/service"
	"github.com/fernando2902/peliculas-catalago/internal/share"
)

// NewCatalogoCommand groups export/import of the movie catalog.
func NewCatalogoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogo",
		Short: "Transferencia del catálogo de películas",
	}
	cmd.AddCommand(newCatalogoExportarCommand(rootOpts))
	cmd.AddCommand(newCatalogoImportarCommand(rootOpts))
	cmd.AddCommand(newCatalogoCompartirCommand(rootOpts))
	return cmd
}

func newCatalogoCompartirCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compartir <id>",
		Short: "Imprime el enlace de WhatsApp para compartir una película",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %q", args[0])
			}
			_, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			pelicula, err := service.NewCatalogoService(st).ObtenerPelicula(cmd.Context(), uint(id))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), share.EnlaceWhatsApp(share.MensajePelicula(pelicula)))
			return nil
		},
	}
	return cmd
}

func newCatalogoExportarCommand(rootOpts *RootOptions) *cobra.Command {
	var salida string

	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta el catálogo de películas a un archivo JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			if salida == "" {
				nombre := fmt.Sprintf("peliculas_%s.json", time.Now().Format("2006-01-02"))
				salida = filepath.Join(cfg.ExportDir, nombre)
			}
			f, err := os.Create(salida)
			if err != nil {
				return fmt.Errorf("crear archivo de catálogo: %w", err)
			}
			defer f.Close()

			svc := service.NewCatalogoService(st)
			if err := svc.ExportarCatalogo(cmd.Context(), f); err != nil {
				return err
			}
			log.Info().Str("archivo", salida).Msg("catálogo exportado")
			return nil
		},
	}

	cmd.Flags().StringVarP(&salida, "salida", "o", "", "archivo de destino (default: peliculas_<fecha>.json)")
	return cmd
}

func newCatalogoImportarCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "importar <archivo>",
		Short: "Reemplaza el catálogo de películas con un archivo JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir archivo de catálogo: %w", err)
			}
			defer f.Close()

			svc := service.NewCatalogoService(st)
			if err := svc.ImportarCatalogo(cmd.Context(), f); err != nil {
				return err
			}
			log.Info().Str("archivo", args[0]).Msg("catálogo importado")
			return nil
		},
	}
	return cmd
}
