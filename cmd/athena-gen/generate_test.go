package main

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/titpetric/athena-gen/schema"
)

const template = `type,database_name,table_name,column_name,column_type,column_comment
database,sales,,,,
table,sales,orders,,,
column,sales,orders,id,string,Order Id
column,sales,orders,amount,double,Amount
view,sales,daily,,,
`

func newConfig(dir string) Config {
	config := Config{
		Input:     filepath.Join(dir, "athena_template.csv"),
		Output:    filepath.Join(dir, "athena-stack.ts"),
		GoPackage: "catalog",
	}
	config.db.Driver = "mysql"
	return config
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	config := newConfig(dir)
	config.GoOutput = filepath.Join(dir, "catalog", "types_gen.go")
	config.ManifestOutput = filepath.Join(dir, "catalog.yaml")
	config.MarkdownOutput = filepath.Join(dir, "docs")
	require.NoError(t, ioutil.WriteFile(config.Input, []byte(template), 0644))

	require.NoError(t, run(context.Background(), config))

	stack, err := ioutil.ReadFile(config.Output)
	require.NoError(t, err)
	require.Contains(t, string(stack), `new glue.CfnTable(this, "OrdersTable", {`)
	require.Contains(t, string(stack), `new CfnOutput(this, "SalesDatabaseName", {`)
	require.NotContains(t, string(stack), "daily")

	for _, filename := range []string{config.GoOutput, config.ManifestOutput, filepath.Join(dir, "docs", "sales", "orders.md")} {
		_, err := os.Stat(filename)
		require.NoError(t, err, filename)
	}

	// byte-identical input produces byte-identical output
	require.NoError(t, run(context.Background(), config))
	again, err := ioutil.ReadFile(config.Output)
	require.NoError(t, err)
	require.Equal(t, stack, again)
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	config := newConfig(dir)

	err := run(context.Background(), config)

	var missing *schema.MissingInputError
	require.True(t, errors.As(err, &missing))
	_, err = os.Stat(config.Output)
	require.True(t, os.IsNotExist(err))
}

func TestRunGoError(t *testing.T) {
	dir := t.TempDir()
	config := newConfig(dir)
	config.GoOutput = filepath.Join(dir, "types_gen.go")
	input := strings.Replace(template, "amount,double", "amount,map<string,int>", 1)
	input = strings.Replace(input, "map<string,int>", "\"map<string,int>\"", 1)
	require.NoError(t, ioutil.WriteFile(config.Input, []byte(input), 0644))

	require.Error(t, run(context.Background(), config))
	_, err := os.Stat(config.Output)
	require.True(t, os.IsNotExist(err))
}

func TestRunSchemaRequired(t *testing.T) {
	config := newConfig(t.TempDir())
	config.db.DSN = "athena:secret@tcp(db:3306)/"

	err := run(context.Background(), config)
	require.Error(t, err)
	require.Contains(t, err.Error(), "-schema is required")
}

func TestConfigSchemas(t *testing.T) {
	config := Config{}
	require.Empty(t, config.Schemas())

	config.db.Schema = "sales, hr,,logs "
	require.Equal(t, []string{"sales", "hr", "logs"}, config.Schemas())
}

func TestRunDuplicateOutputs(t *testing.T) {
	dir := t.TempDir()
	config := newConfig(dir)
	config.GoOutput = filepath.Join(dir, ".", "athena-stack.ts")
	require.NoError(t, ioutil.WriteFile(config.Input, []byte(template), 0644))

	err := run(context.Background(), config)
	require.Error(t, err)
	require.Contains(t, err.Error(), "-output and -go-output both write to")
	_, err = os.Stat(config.Output)
	require.True(t, os.IsNotExist(err))

	config.GoOutput = ""
	config.ManifestOutput = config.Output
	require.Error(t, run(context.Background(), config))
}
