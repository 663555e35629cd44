package main

import (
	"context"
	"os"
	"os/signal"

	"geocoord/internal/app"
	"geocoord/internal/cli"
	"geocoord/internal/config"
	"geocoord/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.Load()
	settings := config.FromEnv()

	if err := logging.Configure(os.Stderr, settings.LogLevel, settings.LogFormat); err != nil {
		os.Stderr.WriteString(cli.RenderErrorLine(err) + "\n")
		return cli.ExitInvalidInput
	}

	parser, closeParser, err := app.NewParser(settings)
	if err != nil {
		os.Stderr.WriteString(cli.RenderErrorLine(err) + "\n")
		return cli.ExitFailure
	}
	defer closeParser()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(parser, settings.BatchWorkers)
	return cli.Execute(ctx, root, os.Args[1:], os.Stderr)
}
