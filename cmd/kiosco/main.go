package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/fernando2902/peliculas-catalago/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		os.Exit(1)
	}
}
