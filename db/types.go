package db

import (
	"context"
	"time"

	"database/sql"
)

type (
	// Credentials contains DSN and Driver
	Credentials struct {
		DSN        string
		DriverName string
	}

	// ConnectionOptions include common connection options
	ConnectionOptions struct {
		Credentials Credentials

		// Connector is an optional parameter to produce our
		// own *sql.DB, which is then wrapped in *sqlx.DB
		Connector func(context.Context, Credentials) (*sql.DB, error)

		Retries        int
		RetryDelay     time.Duration
		ConnectTimeout time.Duration
	}

	// Table is a row from information_schema.tables
	Table struct {
		Name string `db:"table_name"`

		Columns []*Column
	}

	// Column is a row from information_schema.columns
	Column struct {
		Name    string `db:"column_name"`
		Comment string `db:"column_comment"`

		// Holds the clean data type
		DataType string `db:"data_type"`
	}
)
