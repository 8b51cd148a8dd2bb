//go:build !tinygo
// +build !tinygo

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marianogappa/guinote/config"
	"github.com/marianogappa/guinote/exampleclient"
	"github.com/marianogappa/guinote/guinote"
	"github.com/marianogappa/guinote/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The terminal belongs to termbox, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

	state, err := guinote.New(cfg.GameOptions()...)
	if err != nil {
		log.Fatal().Err(err).Msg("creating game")
	}

	var publish func(guinote.Snapshot)
	if cfg.SpectateAddr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		hub := server.NewHub()
		go func() {
			if err := server.Serve(ctx, cfg.SpectateAddr, hub); err != nil {
				log.Error().Err(err).Msg("spectator server stopped")
			}
		}()
		publish = hub.Publish
	}

	if err := exampleclient.Run(state, guinote.NewBot(), publish); err != nil {
		log.Error().Err(err).Msg("client stopped")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info().Str("round", state.RoundID).Msg("bye")
}
