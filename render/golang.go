package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"

	"github.com/titpetric/athena-gen/naming"
	"github.com/titpetric/athena-gen/schema"
)

var numericTypes = map[string]func() *jen.Statement{
	"tinyint":  jen.Int8,
	"smallint": jen.Int16,
	"int":      jen.Int32,
	"integer":  jen.Int32,
	"bigint":   jen.Int64,
	"float":    jen.Float32,
	"real":     jen.Float32,
	"double":   jen.Float64,
}

var simpleTypes = map[string]func() *jen.Statement{
	"string":  jen.String,
	"varchar": jen.String,
	"char":    jen.String,
	"boolean": jen.Bool,
	// `decimal` keeps precision as a string
	"decimal": jen.String,
	"binary": func() *jen.Statement {
		return jen.Index().Byte()
	},
}

var specialTypes = map[string]func() *jen.Statement{
	"date": func() *jen.Statement {
		return jen.Op("*").Qual("time", "Time")
	},
	"timestamp": func() *jen.Statement {
		return jen.Op("*").Qual("time", "Time")
	},
	// `array`, `map` and `struct` aren't implemented
}

// baseType strips parameters from a column type, `varchar(64)` -> `varchar`
func baseType(columnType string) string {
	columnType = strings.ToLower(strings.TrimSpace(columnType))
	if idx := strings.IndexAny(columnType, "(<"); idx >= 0 {
		columnType = columnType[:idx]
	}
	return strings.TrimSpace(columnType)
}

func resolveType(column schema.Column) (*jen.Statement, error) {
	dataType := baseType(column.Type)
	if val, ok := simpleTypes[dataType]; ok {
		return val(), nil
	}
	if val, ok := numericTypes[dataType]; ok {
		return val(), nil
	}
	if val, ok := specialTypes[dataType]; ok {
		return val(), nil
	}
	return nil, errors.Errorf("Unsupported column type: %s", column.Type)
}

// Go renders a Go source file with a struct for every table
func Go(pkg string, c *schema.Catalog) ([]byte, error) {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by athena-gen. DO NOT EDIT.")

	names := map[string]schema.TableKey{}
	for _, key := range c.TableKeys() {
		name := naming.GoName(key.Table)
		if previous, ok := names[name]; ok {
			return nil, errors.Errorf("Type %s for table %s conflicts with table %s", name, key, previous)
		}
		names[name] = key

		fields := []string{}
		seen := map[string]bool{}
		structFields := []jen.Code{}
		for _, column := range c.Columns(key) {
			if seen[column.Name] {
				continue
			}
			seen[column.Name] = true
			fields = append(fields, column.Name)

			columnType, err := resolveType(column)
			if err != nil {
				return nil, errors.Wrapf(err, "table %s, column %s", key, column.Name)
			}
			if column.Comment != "" {
				if len(structFields) > 0 {
					structFields = append(structFields, jen.Line())
				}
				structFields = append(structFields, jen.Comment(column.Comment))
			}
			structFields = append(structFields, jen.Id(naming.GoName(column.Name)).Add(columnType).Tag(map[string]string{
				"db":   column.Name,
				"json": "-",
			}))
		}

		f.Commentf("%s generated for table `%s`.`%s`", name, key.Database, key.Table)
		f.Type().Id(name).Struct(structFields...)
		f.Line()

		f.Commentf("%sTable is the name of the table in the catalog", name)
		f.Const().Id(name + "Table").Op("=").Lit(fmt.Sprintf("`%s`.`%s`", key.Database, key.Table))
		f.Line()

		fieldValues := []jen.Code{}
		for _, v := range fields {
			fieldValues = append(fieldValues, jen.Lit(v))
		}
		f.Commentf("%sFields are all the field names in the table", name)
		f.Var().Id(name + "Fields").Op("=").Index().String().Values(fieldValues...)
		f.Line()
	}

	buf := &bytes.Buffer{}
	if err := f.Render(buf); err != nil {
		return nil, errors.Wrap(err, "rendering go source")
	}
	return buf.Bytes(), nil
}
