package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// captureDBTX перехватывает последний запрос и его аргументы вместо похода в
// базу. Scan при этом ничего не заполняет.
type captureDBTX struct {
	sql  string
	args []any
}

func (c *captureDBTX) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	return pgconn.CommandTag{}, nil
}

func (c *captureDBTX) Query(_ context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return nil, nil
}

func (c *captureDBTX) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	c.sql, c.args = sql, args
	return noopRow{}
}

func (c *captureDBTX) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults {
	return nil
}

type noopRow struct{}

func (noopRow) Scan(_ ...any) error { return nil }
