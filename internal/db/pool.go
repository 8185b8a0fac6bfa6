package db

import (
	"context"
	"fmt"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	TracingEnabled bool
}

// NewDBPool creates a pgx connection pool for the fitlog database, with
// query tracing attached when tracing is enabled.
func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://postgres@%s:%s/%s",
		params.DBHost, params.DBPort, params.DBName,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer(
			otelpgx.WithTrimSQLInSpanName(),
		)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return pool, nil
}
