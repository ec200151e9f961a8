// Package cli wires the kiosco commands: backups, catalog transfer, daily
// close and ticket printing against the local database.
package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fernando2902/peliculas-catalago/internal/config"
	"github.com/fernando2902/peliculas-catalago/internal/store"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	DBPath  string
	Verbose bool
}

// NewRootCommand creates the kiosco root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kiosco",
		Short: "Kiosco - catálogo de películas y punto de venta local",
		Long: `Kiosco administra la base de datos local compartida por el catálogo de
películas y el punto de venta: respaldos JSON, cortes diarios y tickets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Structured logger — dev: pretty, prod: JSON
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
			if !opts.Verbose {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "ruta de la base de datos (default: $KIOSCO_DB_PATH)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "salida detallada")

	cmd.AddCommand(NewRespaldoCommand(opts))
	cmd.AddCommand(NewCatalogoCommand(opts))
	cmd.AddCommand(NewCorteCommand(opts))
	cmd.AddCommand(NewTicketCommand(opts))
	cmd.AddCommand(NewPromoCommand(opts))
	cmd.AddCommand(NewAlmacenamientoCommand(opts))

	return cmd
}

// abrir loads configuration and opens the database, honoring the --db
// override.
func abrir(opts *RootOptions) (*config.Config, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}
