package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"hotel/config"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// The menu issues one statement at a time over a single session.
const (
	postgresMaxIdleConnection = 1
	postgresMaxOpenConnection = 1
)

var ErrConnectionFailed = errors.New("failed connecting to database")

// Connection is the single database session shared by every operation.
type Connection struct {
	DB *sqlx.DB

	closeOnce sync.Once
}

// NewFromDB wraps an already opened handle.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{DB: db}
}

// Connect opens the configured database, retrying DB_POSTGRES_MAX_RETRY times.
func Connect(config *config.Config) (*Connection, error) {
	db, err := CreatePostgresConnection(
		config.DB.Postgres.Username,
		config.DB.Postgres.Password,
		config.DB.Postgres.Host,
		config.DB.Postgres.Port,
		config.DB.Postgres.Name,
		config.DB.Postgres.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
	if err != nil {
		return nil, err
	}

	return NewFromDB(db), nil
}

// Descriptor builds the connection URL for the given parameters.
func Descriptor(username, password, host, port, dbName, sslMode string) string {
	descriptor := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + dbName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	switch {
	case password != "":
		descriptor.User = url.UserPassword(username, password)
	case username != "":
		descriptor.User = url.User(username)
	}

	return descriptor.String()
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) (*sqlx.DB, error) {
	descriptor := Descriptor(username, password, host, port, dbName, sslMode)

	var lastErr error

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Str("user", username).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry+1 < maxRetry {
			time.Sleep(time.Duration(waitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, lastErr)
}

// Close releases the session. Calling it more than once is a no-op.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		if c.DB == nil {
			return
		}

		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connection")
		}
	})
}
