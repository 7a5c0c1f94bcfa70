package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const template = `type,database_name,table_name,column_name,column_type,column_comment
database,sales,,,,
table,sales,orders,,,
column,sales,orders,id,string,Order Id
column,sales,orders,amount,string,"Amount, in cents"
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(template))
	require.NoError(t, err)
	require.Len(t, records, 4)

	require.Equal(t, Record{Type: TypeDatabase, DatabaseName: "sales"}, records[0])
	require.Equal(t, Record{Type: TypeTable, DatabaseName: "sales", TableName: "orders"}, records[1])
	require.Equal(t, "id", records[2].ColumnName)
	require.Equal(t, "Amount, in cents", records[3].ColumnComment)
}

func TestReadHeaderOrder(t *testing.T) {
	input := "column_comment,column_type,column_name,table_name,database_name,type,extra\n" +
		"Order Id,string,id,orders,sales,column,ignored\n"
	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []Record{{
		Type:          TypeColumn,
		DatabaseName:  "sales",
		TableName:     "orders",
		ColumnName:    "id",
		ColumnType:    "string",
		ColumnComment: "Order Id",
	}}, records)
}

func TestReadEmpty(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestReadMissingField(t *testing.T) {
	_, err := Read(strings.NewReader("type,database_name,table_name\ndatabase,sales,\n"))

	var malformedErr *MalformedRecordError
	require.True(t, errors.As(err, &malformedErr))
	require.Equal(t, 1, malformedErr.Line)
	require.Equal(t, "column_name", malformedErr.Field)
}

func TestReadLooseRows(t *testing.T) {
	input := "type,database_name,table_name,column_name,column_type,column_comment\n" +
		"database,sales\n" +
		"column,sales,products,size,string,5\" screen\n" +
		"table,sales,products,,,,trailing\n"
	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, []Record{
		{Type: TypeDatabase, DatabaseName: "sales"},
		{Type: TypeColumn, DatabaseName: "sales", TableName: "products", ColumnName: "size", ColumnType: "string", ColumnComment: "5\" screen"},
		{Type: TypeTable, DatabaseName: "sales", TableName: "products"},
	}, records)
}

func TestReadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "athena_template.csv")
	require.NoError(t, os.WriteFile(filename, []byte(template), 0644))

	records, err := ReadFile(filename)
	require.NoError(t, err)
	require.Len(t, records, 4)
}

func TestReadFileMissing(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing.csv")

	records, err := ReadFile(filename)
	require.Nil(t, records)

	var missingErr *MissingInputError
	require.True(t, errors.As(err, &missingErr))
	require.Equal(t, filename, missingErr.Path)
	require.Equal(t, "error: "+filename+" file does not exist", err.Error())
}
