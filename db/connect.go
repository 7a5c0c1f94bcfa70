package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Connect connects to a database, retrying if options allow it
func Connect(ctx context.Context, options ConnectionOptions) (*sqlx.DB, error) {
	if options.Retries > 1 {
		return ConnectWithRetry(ctx, options)
	}
	return ConnectWithOptions(ctx, options)
}

// ConnectWithOptions connect to host based on ConnectionOptions{}
func ConnectWithOptions(ctx context.Context, options ConnectionOptions) (*sqlx.DB, error) {
	credentials := options.Credentials
	if credentials.DSN == "" {
		return nil, errors.New("DSN not provided")
	}
	if credentials.DriverName == "" {
		credentials.DriverName = "mysql"
	}
	if credentials.DriverName == "mysql" {
		credentials.DSN = cleanDSN(credentials.DSN)
	}
	if options.Connector != nil {
		handle, err := options.Connector(ctx, credentials)
		if err == nil {
			return sqlx.NewDb(handle, credentials.DriverName), nil
		}
		return nil, errors.WithStack(err)
	}
	handle, err := sqlx.ConnectContext(ctx, credentials.DriverName, credentials.DSN)
	return handle, errors.WithStack(err)
}
