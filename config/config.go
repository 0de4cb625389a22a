package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	} `envconfig:"SERVER"`

	App struct {
		Name          string  `envconfig:"APP_NAME"       default:"hotel"`
		Timezone      string  `envconfig:"TIMEZONE"       default:"UTC"`
		SearchRadius  float64 `envconfig:"SEARCH_RADIUS"  default:"30"`
		RecentLimit   uint    `envconfig:"RECENT_LIMIT"   default:"5"`
		HashPasswords bool    `envconfig:"HASH_PASSWORDS" default:"false"`
	} `envconfig:"APP"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"1"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"1"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			Host           string `envconfig:"HOST"            default:"localhost"`
			Port           string `envconfig:"PORT"            default:"5432"`
			Username       string `envconfig:"USER"`
			Password       string `envconfig:"PASSWORD"`
			Name           string `envconfig:"NAME"`
			SSLMode        string `envconfig:"SSL_MODE"        default:"disable"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Debug().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Debug().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Debug().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// OverrideDatabase applies the positional command line arguments on top of the environment.
func (c *Config) OverrideDatabase(name, port, user string) {
	c.DB.Postgres.Name = name
	c.DB.Postgres.Port = port
	c.DB.Postgres.Username = user
}
