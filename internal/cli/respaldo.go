package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fernando2902/peliculas-catalago/internal/service"
)

// NewRespaldoCommand groups export/import of the full POS database.
func NewRespaldoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "respaldo",
		Short: "Respaldo completo del punto de venta",
	}
	cmd.AddCommand(newRespaldoExportarCommand(rootOpts))
	cmd.AddCommand(newRespaldoImportarCommand(rootOpts))
	return cmd
}

func newRespaldoExportarCommand(rootOpts *RootOptions) *cobra.Command {
	var salida string

	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta todas las colecciones del punto de venta a un archivo JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			if salida == "" {
				nombre := fmt.Sprintf("respaldo_%s.json", time.Now().Format("2006-01-02"))
				salida = filepath.Join(cfg.ExportDir, nombre)
			}
			f, err := os.Create(salida)
			if err != nil {
				return fmt.Errorf("crear archivo de respaldo: %w", err)
			}
			defer f.Close()

			svc := service.NewRespaldoService(st)
			if err := svc.ExportarTodo(cmd.Context(), f); err != nil {
				return err
			}
			log.Info().Str("archivo", salida).Msg("respaldo exportado")
			return nil
		},
	}

	cmd.Flags().StringVarP(&salida, "salida", "o", "", "archivo de destino (default: respaldo_<fecha>.json)")
	return cmd
}

func newRespaldoImportarCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "importar <archivo>",
		Short: "Reemplaza todas las colecciones del punto de venta con un respaldo JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir respaldo: %w", err)
			}
			defer f.Close()

			svc := service.NewRespaldoService(st)
			if err := svc.ImportarTodo(cmd.Context(), f); err != nil {
				return err
			}
			log.Info().Str("archivo", args[0]).Msg("respaldo importado")
			return nil
		},
	}
	return cmd
}
