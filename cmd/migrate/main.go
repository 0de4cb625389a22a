package main

import (
	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength         = 2
	argLengthWithDB   = 5
	usage             = "usage: migrate <up|down|drop|step-up> [dbname port user]"
	exitInvalidUsage  = 2
	exitMigrateFailed = 1
)

func main() {
	logger.InitLogger()

	if len(os.Args) != argLength && len(os.Args) != argLengthWithDB {
		log.Error().Msg(usage)
		os.Exit(exitInvalidUsage)
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if len(os.Args) == argLengthWithDB {
		cfg.OverrideDatabase(os.Args[2], os.Args[3], os.Args[4])
	}

	var err error

	switch os.Args[1] {
	case "up":
		err = helper.Up(cfg)
	case "down":
		err = helper.Down(cfg)
	case "drop":
		err = helper.Drop(cfg)
	case "step-up":
		err = helper.StepUp(cfg)
	default:
		log.Error().Str("action", os.Args[1]).Msg("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
		os.Exit(exitInvalidUsage)
	}

	if err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(exitMigrateFailed)
	}
}
