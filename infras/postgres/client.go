package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/table"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Client executes single statements over the connection.
type Client interface {
	ExecuteWrite(ctx context.Context, query string, args ...any) (int64, error)
	ExecuteRead(ctx context.Context, query string, args ...any) (table.Table, error)
	ExecuteCount(ctx context.Context, query string, args ...any) (int, error)
	Close()
}

var _ Client = (*Connection)(nil)

// ExecuteWrite runs an insert, update or delete and returns the number of affected rows.
func (c *Connection) ExecuteWrite(ctx context.Context, query string, args ...any) (int64, error) {
	log.Debug().Str(constant.OtelQueryAttributeKey, query).Msg("executing write statement")

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, mapError(err)
	}

	return affected, nil
}

// ExecuteRead runs a query and materializes every row as text.
func (c *Connection) ExecuteRead(ctx context.Context, query string, args ...any) (table.Table, error) {
	log.Debug().Str(constant.OtelQueryAttributeKey, query).Msg("executing read statement")

	rows, err := c.DB.QueryxContext(ctx, query, args...)
	if err != nil {
		return table.Table{}, mapError(err)
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return table.Table{}, mapError(err)
	}

	result := table.Table{Columns: make([]string, len(columnTypes))}
	for i, columnType := range columnTypes {
		result.Columns[i] = columnType.Name()
	}

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return table.Table{}, mapError(err)
		}

		cells := make([]sql.NullString, len(values))
		for i, value := range values {
			cells[i] = formatCell(value, columnTypes[i].DatabaseTypeName())
		}

		result.Rows = append(result.Rows, cells)
	}

	if err := rows.Err(); err != nil {
		return table.Table{}, mapError(err)
	}

	return result, nil
}

// ExecuteCount runs a query and returns the number of rows it produced.
func (c *Connection) ExecuteCount(ctx context.Context, query string, args ...any) (int, error) {
	log.Debug().Str(constant.OtelQueryAttributeKey, query).Msg("executing count statement")

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, mapError(err)
	}

	return count, nil
}

func formatCell(value any, databaseType string) sql.NullString {
	switch val := value.(type) {
	case nil:
		return table.Null
	case []byte:
		return table.Value(trimPadding(string(val), databaseType))
	case string:
		return table.Value(trimPadding(val, databaseType))
	case time.Time:
		return table.Value(formatTime(val, databaseType))
	case int64:
		return table.Value(strconv.FormatInt(val, 10))
	case float64:
		return table.Value(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		return table.Value(strconv.FormatBool(val))
	default:
		return table.Value(fmt.Sprintf("%v", val))
	}
}

func trimPadding(val, databaseType string) string {
	if databaseType == "BPCHAR" {
		return strings.TrimRight(val, " ")
	}

	return val
}

func formatTime(val time.Time, databaseType string) string {
	switch databaseType {
	case "DATE":
		return val.Format(constant.DisplayDateLayout)
	case "TIMESTAMP", "TIMESTAMPTZ":
		return val.Format(constant.TimestampLayout)
	}

	if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
		return val.Format(constant.DisplayDateLayout)
	}

	return val.Format(constant.TimestampLayout)
}

func mapError(err error) error {
	if IsConnectionError(err) {
		log.Error().Err(err).Msg("database connection is no longer usable")

		return failure.Unavailable(err) //nolint:wrapcheck
	}

	return failure.Statement(err) //nolint:wrapcheck
}

// IsConnectionError reports whether err means the session itself is gone.
func IsConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code.Class()) == constant.PqErrorClassConnectionError
	}

	return false
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
