package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/fuelfleet/internal/cli"
	"github.com/GlebRadaev/fuelfleet/pkg/clients"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cmd := cli.NewRootCommand(clients.NewHTTPClient())
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Str("command", cmd.Name()).Msg("fleetctl failed")
		os.Exit(1)
	}
}
