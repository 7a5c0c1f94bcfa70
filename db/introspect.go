package db

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/titpetric/athena-gen/schema"
)

type queries struct {
	tables  string
	columns string
}

// Queries take `?` placeholders, rebound for the driver in use
var driverQueries = map[string]queries{
	"mysql": {
		tables:  "select TABLE_NAME as table_name from information_schema.tables where table_schema=? and table_type='BASE TABLE' order by table_name asc",
		columns: "select COLUMN_NAME as column_name, DATA_TYPE as data_type, COLUMN_COMMENT as column_comment from information_schema.columns where table_schema=? and table_name=? order by ordinal_position asc",
	},
	"pgx": {
		tables:  "select table_name from information_schema.tables where table_schema=? and table_type='BASE TABLE' order by table_name asc",
		columns: "select c.column_name, c.data_type, coalesce(col_description(format('%I.%I', c.table_schema, c.table_name)::regclass, c.ordinal_position), '') as column_comment from information_schema.columns c where c.table_schema=? and c.table_name=? order by c.ordinal_position asc",
	},
}

var athenaTypes = map[string]string{
	"tinyint":   "tinyint",
	"smallint":  "smallint",
	"mediumint": "int",
	"int":       "int",
	"integer":   "int",
	"bigint":    "bigint",
	"float":     "float",
	"real":      "float",
	"double":    "double",
	// postgres reports the full type name
	"double precision":            "double",
	"decimal":                     "decimal",
	"numeric":                     "decimal",
	"bool":                        "boolean",
	"boolean":                     "boolean",
	"date":                        "date",
	"datetime":                    "timestamp",
	"timestamp":                   "timestamp",
	"timestamp without time zone": "timestamp",
	"timestamp with time zone":    "timestamp",
	"binary":                      "binary",
	"varbinary":                   "binary",
	"blob":                        "binary",
	"longblob":                    "binary",
	"bytea":                       "binary",
}

// AthenaType maps a database data type to an Athena column type.
// Anything not listed is read as a string.
func AthenaType(dataType string) string {
	if val, ok := athenaTypes[strings.ToLower(dataType)]; ok {
		return val
	}
	return "string"
}

// Introspect lists schema records for the given schemas, in the order
// a schema template would declare them: the database, its tables and
// then the columns of each table.
func Introspect(ctx context.Context, handle *sqlx.DB, schemas []string) ([]schema.Record, error) {
	q, ok := driverQueries[handle.DriverName()]
	if !ok {
		return nil, errors.Errorf("Unsupported driver for introspection: %s", handle.DriverName())
	}

	result := []schema.Record{}
	for _, name := range schemas {
		tables := []*Table{}
		if err := handle.SelectContext(ctx, &tables, handle.Rebind(q.tables), name); err != nil {
			return nil, errors.Wrapf(err, "Error listing database tables for schema: %s", name)
		}

		for _, table := range tables {
			if err := handle.SelectContext(ctx, &table.Columns, handle.Rebind(q.columns), name, table.Name); err != nil {
				return nil, errors.Wrapf(err, "Error listing database columns for table: %s", table.Name)
			}
		}

		result = append(result, schema.Record{
			Type:         schema.TypeDatabase,
			DatabaseName: name,
		})
		for _, table := range tables {
			result = append(result, schema.Record{
				Type:         schema.TypeTable,
				DatabaseName: name,
				TableName:    table.Name,
			})
		}
		for _, table := range tables {
			for _, column := range table.Columns {
				result = append(result, schema.Record{
					Type:          schema.TypeColumn,
					DatabaseName:  name,
					TableName:     table.Name,
					ColumnName:    column.Name,
					ColumnType:    AthenaType(column.DataType),
					ColumnComment: column.Comment,
				})
			}
		}
	}
	return result, nil
}
