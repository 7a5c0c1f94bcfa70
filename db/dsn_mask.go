package db

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const maskedPassword = "****"

// maskDSN hides the password of a DSN for logging. A DSN the driver
// can't parse is hidden completely.
func maskDSN(driverName, dsn string) string {
	switch driverName {
	case "", "mysql":
		config, err := mysql.ParseDSN(dsn)
		if err != nil {
			return maskedPassword
		}
		if config.Passwd != "" {
			config.Passwd = maskedPassword
		}
		return config.FormatDSN()
	case "pgx":
		config, err := pgconn.ParseConfig(dsn)
		if err != nil {
			return maskedPassword
		}
		user := config.User
		if config.Password != "" {
			user += ":" + maskedPassword
		}
		return fmt.Sprintf("postgres://%s@%s:%d/%s", user, config.Host, config.Port, config.Database)
	}
	return maskedPassword
}
