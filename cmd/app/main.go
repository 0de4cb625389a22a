package main

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/di"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/logger"
	"hotel/shared/timezone"
	"hotel/transport/cli"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 3
	usage     = "Usage: app <dbname> <port> <user>"

	exitOK            = 0
	exitConnectFailed = 1
	exitConfigFailed  = 2
	exitPanicked      = 3
	exitInterrupted   = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	logger.InitLogger()

	if len(args) != argLength {
		fmt.Fprintln(os.Stderr, usage)

		return exitOK
	}

	if err := config.Init(); err != nil {
		log.Error().Err(err).Msg("failed to initialize configuration")

		return exitConfigFailed
	}

	cfg := config.Get()
	cfg.OverrideDatabase(args[0], args[1], args[2])

	logger.SetLogLevel(cfg)
	timezone.Init(cfg)

	otl := otel.New(cfg)
	defer func() {
		if err := otl.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to shut down tracer provider")
		}
	}()

	fmt.Print("Connecting to database...")

	conn, err := postgres.Connect(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error - Unable to Connect to Database: "+err.Error())
		fmt.Println("Make sure you started postgres on this machine")

		return exitConnectFailed
	}

	fmt.Println("Done")

	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("menu loop panicked")
			conn.Close()

			code = exitPanicked
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	defer signal.Stop(signals)

	go func() {
		sig := <-signals

		log.Warn().Str("signal", sig.String()).Msg("received signal, disconnecting")
		conn.Close()
		os.Exit(exitInterrupted)
	}()

	app := di.InitializeCLI(conn, otl, cli.StdConsole())
	app.Run(context.Background())

	return exitOK
}
