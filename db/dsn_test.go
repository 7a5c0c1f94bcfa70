package db

import (
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	assert := func(ok bool, format string, params ...interface{}) {
		if !ok {
			t.Fatalf(format, params...)
		}
	}

	clean := cleanDSN("athena:secret@tcp(db:3306)/sales")
	assert(clean == "athena:secret@tcp(db:3306)/sales?collation=utf8_general_ci&parseTime=true&loc=Local", "Unexpected DSN: %s", clean)

	clean = cleanDSN("athena:secret@tcp(db:3306)/sales?parseTime=false")
	assert(clean == "athena:secret@tcp(db:3306)/sales?parseTime=false&collation=utf8_general_ci&loc=Local", "Unexpected DSN: %s", clean)

	masked := maskDSN("mysql", "athena:secret@tcp(db:3306)/sales")
	assert(strings.HasPrefix(masked, "athena:****@tcp(db:3306)/sales"), "Unexpected masked DSN: %s", masked)

	masked = maskDSN("", "athena@tcp(db:3306)/sales")
	assert(strings.HasPrefix(masked, "athena@tcp(db:3306)/sales"), "Unexpected masked DSN: %s", masked)
}

func TestDSNMaskPostgres(t *testing.T) {
	assert := func(ok bool, format string, params ...interface{}) {
		if !ok {
			t.Fatalf(format, params...)
		}
	}

	masked := maskDSN("pgx", "host=db user=athena password=secret dbname=sales")
	assert(masked == "postgres://athena:****@db:5432/sales", "Unexpected masked DSN: %s", masked)

	masked = maskDSN("pgx", "postgres://athena:secret@db:6543/sales?sslmode=disable")
	assert(masked == "postgres://athena:****@db:6543/sales", "Unexpected masked DSN: %s", masked)

	masked = maskDSN("pgx", "host=db port=notaport password=secret")
	assert(masked == "****", "Unexpected masked DSN: %s", masked)

	masked = maskDSN("sqlite3", "file:secret.db")
	assert(!strings.Contains(masked, "secret"), "Unexpected masked DSN: %s", masked)
}
