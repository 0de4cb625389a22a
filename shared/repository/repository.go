package repository

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"hotel/shared/table"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" //nolint:revive
)

// Dialect renders statements with $n placeholders.
var Dialect = goqu.Dialect("postgres")

type statement interface {
	ToSQL() (string, []any, error)
}

// Repository runs goqu statements for one entity through the database client.
type Repository struct {
	db      postgres.Client
	otel    otel.Otel
	entitas string
	table   string
}

func NewRepository(entitasName, tableName string, db postgres.Client, otl otel.Otel) Repository {
	return Repository{
		db:      db,
		otel:    otl,
		entitas: entitasName,
		table:   tableName,
	}
}

// From starts a prepared select on the entity table.
func (repo *Repository) From() *goqu.SelectDataset {
	return Dialect.From(repo.table).Prepared(true)
}

// Insert starts a prepared insert into the entity table.
func (repo *Repository) Insert() *goqu.InsertDataset {
	return Dialect.Insert(repo.table).Prepared(true)
}

// Update starts a prepared update of the entity table.
func (repo *Repository) Update() *goqu.UpdateDataset {
	return Dialect.Update(repo.table).Prepared(true)
}

// Select starts a prepared select on any table.
func Select(from ...any) *goqu.SelectDataset {
	return Dialect.From(from...).Prepared(true)
}

func (repo *Repository) toSQL(scope otel.Scope, stmt statement) (string, []any, error) {
	query, args, err := stmt.ToSQL()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", nil, fmt.Errorf("failed to build statement (%s): %w", repo.entitas, err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return query, args, nil
}

// Write executes an insert or update and returns the affected row count.
func (repo *Repository) Write(ctx context.Context, operation string, stmt statement) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
	defer scope.End()

	query, args, err := repo.toSQL(scope, stmt)
	if err != nil {
		return 0, err
	}

	affected, err := repo.db.ExecuteWrite(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to %s (%s): %w", operation, repo.entitas, err)
	}

	return affected, nil
}

// Read executes a query and returns its rows.
func (repo *Repository) Read(ctx context.Context, operation string, stmt statement) (table.Table, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
	defer scope.End()

	query, args, err := repo.toSQL(scope, stmt)
	if err != nil {
		return table.Table{}, err
	}

	result, err := repo.db.ExecuteRead(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return table.Table{}, fmt.Errorf("failed to %s (%s): %w", operation, repo.entitas, err)
	}

	return result, nil
}

// Count executes a query and returns how many rows it produced.
func (repo *Repository) Count(ctx context.Context, operation string, stmt statement) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
	defer scope.End()

	query, args, err := repo.toSQL(scope, stmt)
	if err != nil {
		return 0, err
	}

	count, err := repo.db.ExecuteCount(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to %s (%s): %w", operation, repo.entitas, err)
	}

	return count, nil
}

// Exist reports whether the query returns at least one row.
func (repo *Repository) Exist(ctx context.Context, operation string, stmt *goqu.SelectDataset) (bool, error) {
	count, err := repo.Count(ctx, operation, stmt.Limit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
