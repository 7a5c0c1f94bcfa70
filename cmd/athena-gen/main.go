package main

import (
	"log"
	"os"
	"time"

	"github.com/SentimensRG/sigctx"
	"github.com/namsral/flag"
	"github.com/pkg/errors"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/titpetric/athena-gen/schema"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	var config Config
	flag.StringVar(&config.Input, "input", "athena_template.csv", "Schema template (CSV)")
	flag.StringVar(&config.Output, "output", "athena-stack.ts", "Generated stack source")
	flag.StringVar(&config.GoOutput, "go-output", "", "Generated Go types (optional)")
	flag.StringVar(&config.GoPackage, "go-package", "catalog", "Package name for Go types")
	flag.StringVar(&config.MarkdownOutput, "markdown-output", "", "Folder for table docs (optional)")
	flag.StringVar(&config.ManifestOutput, "manifest-output", "", "Catalog manifest YAML (optional)")
	flag.StringVar(&config.db.Driver, "db-driver", "mysql", "Database driver (mysql, pgx)")
	flag.StringVar(&config.db.DSN, "db-dsn", "", "DSN for database connection, replaces -input")
	flag.StringVar(&config.db.Schema, "schema", "", "Comma separated schema names to read")
	flag.IntVar(&config.db.Retries, "db-retries", 1, "Database connection attempts")
	flag.DurationVar(&config.db.RetryDelay, "db-retry-delay", time.Second, "Delay between connection attempts")
	flag.DurationVar(&config.db.Timeout, "db-timeout", 30*time.Second, "Database connection timeout")
	flag.Parse()

	if err := run(sigctx.New(), config); err != nil {
		var missing *schema.MissingInputError
		if errors.As(err, &missing) {
			log.Fatal(missing)
		}
		log.Fatalf("An error occured: %+v", err)
	}
}
