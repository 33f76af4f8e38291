package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var version string = "unknown"

func main() {
	var input CLIInput

	_ = godotenv.Load()

	cliCtx := kong.Parse(&input,
		kong.Name("booktable"),
		kong.Description("Lists the books served by a GraphQL endpoint."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	logger, err := newLogger(input.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliCtx.BindTo(ctx, (*context.Context)(nil))
	err = cliCtx.Run(logger.Sugar())
	cliCtx.FatalIfErrorf(err)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
