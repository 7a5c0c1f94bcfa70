package db

import "strings"

// cleanDSN adds the go-sql-driver/mysql options we rely on,
// unless the DSN already sets them
func cleanDSN(dsn string) string {
	dsn = addOptionToDSN(dsn, "?", "?")
	dsn = addOptionToDSN(dsn, "collation=", "&collation=utf8_general_ci")
	dsn = addOptionToDSN(dsn, "parseTime=", "&parseTime=true")
	dsn = addOptionToDSN(dsn, "loc=", "&loc=Local")
	return strings.Replace(dsn, "?&", "?", 1)
}

func addOptionToDSN(dsn, match, option string) string {
	if !strings.Contains(dsn, match) {
		return dsn + option
	}
	return dsn
}
