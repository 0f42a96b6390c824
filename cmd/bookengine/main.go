// Command bookengine replays a file of user actions (new order, cancel,
// flush) through a single-symbol limit order book and prints each action's
// response lines (primary, then secondary if any; none for a flush), per
// spec.md §6.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bookengine/internal/book"
	"bookengine/internal/config"
	"bookengine/internal/pipeline"
)

func main() {
	os.Exit(run())
}

// run is split out from main so the exit code can be computed without
// calling os.Exit directly inside business logic, matching the teacher's
// preference for leaving process-level concerns (signal handling) in
// cmd/main.go rather than library code.
func run() int {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: bookengine <input-file>")
		return 2
	}
	inputPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return 1
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in, err := os.Open(inputPath)
	if err != nil {
		log.Error().Err(err).Str("path", inputPath).Msg("unable to open input file")
		return 1
	}
	defer in.Close()

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Output).Msg("unable to open output")
		return 1
	}
	defer closeOut()

	b := book.New(cfg.Ticker, cfg.TradeActive)
	log.Info().Str("ticker", cfg.Ticker).Bool("trade_active", cfg.TradeActive).Msg("book engine starting")

	if err := pipeline.Run(ctx, b, in, out); err != nil {
		log.Error().Err(err).Msg("pipeline exited with error")
		return 1
	}
	return 0
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
