package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernando2902/peliculas-catalago/internal/service"
)

// NewAlmacenamientoCommand reports per-collection record counts and the
// database file size.
func NewAlmacenamientoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "almacenamiento",
		Short: "Muestra el uso de almacenamiento de la base de datos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := abrir(rootOpts)
			if err != nil {
				return err
			}
			rep, err := service.NewRespaldoService(st).EspacioAlmacenamiento(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ventas:            %d\n", rep.Ventas)
			fmt.Fprintf(out, "Entradas:          %d\n", rep.Entradas)
			fmt.Fprintf(out, "Salidas:           %d\n", rep.Salidas)
			fmt.Fprintf(out, "Productos:         %d\n", rep.Productos)
			fmt.Fprintf(out, "Clientes:          %d\n", rep.Clientes)
			fmt.Fprintf(out, "Productos canje:   %d\n", rep.ProductosPuntos)
			fmt.Fprintf(out, "Tamaño de archivo: %.2f KB\n", float64(rep.TamanoArchivo)/1024)
			return nil
		},
	}
	return cmd
}
