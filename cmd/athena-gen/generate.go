package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/titpetric/athena-gen/db"
	"github.com/titpetric/athena-gen/internal"
	"github.com/titpetric/athena-gen/render"
	"github.com/titpetric/athena-gen/schema"
)

func records(ctx context.Context, config Config) ([]schema.Record, error) {
	if config.db.DSN == "" {
		return schema.ReadFile(config.Input)
	}

	schemas := config.Schemas()
	if len(schemas) == 0 {
		return nil, errors.New("-schema is required when reading from a database")
	}

	options := db.ConnectionOptions{
		Credentials: db.Credentials{
			DSN:        config.db.DSN,
			DriverName: config.db.Driver,
		},
		Retries:        config.db.Retries,
		RetryDelay:     config.db.RetryDelay,
		ConnectTimeout: config.db.Timeout,
	}
	handle, err := db.Connect(ctx, options)
	if err != nil {
		return nil, errors.Wrap(err, "Error connecting to database")
	}
	defer handle.Close()

	return db.Introspect(ctx, handle, schemas)
}

// checkOutputs rejects configurations writing two outputs to one file
func checkOutputs(config Config) error {
	seen := map[string]string{}
	outputs := []struct {
		flag, filename string
	}{
		{"-output", config.Output},
		{"-go-output", config.GoOutput},
		{"-manifest-output", config.ManifestOutput},
	}
	for _, output := range outputs {
		if output.filename == "" {
			continue
		}
		filename := filepath.Clean(output.filename)
		if previous, ok := seen[filename]; ok {
			return errors.Errorf("%s and %s both write to %s", previous, output.flag, filename)
		}
		seen[filename] = output.flag
	}
	return nil
}

func run(ctx context.Context, config Config) error {
	if err := checkOutputs(config); err != nil {
		return err
	}

	rows, err := records(ctx, config)
	if err != nil {
		return err
	}
	catalog := schema.Classify(rows)

	// render everything before writing anything
	outputs := map[string][]byte{
		config.Output: []byte(render.Stack(catalog)),
	}
	if config.GoOutput != "" {
		contents, err := render.Go(config.GoPackage, catalog)
		if err != nil {
			return err
		}
		outputs[config.GoOutput] = contents
	}
	if config.ManifestOutput != "" {
		contents, err := render.ManifestYAML(catalog)
		if err != nil {
			return err
		}
		outputs[config.ManifestOutput] = contents
	}

	for _, filename := range []string{config.Output, config.GoOutput, config.ManifestOutput} {
		if filename == "" {
			continue
		}
		if err := internal.WriteFile(filename, outputs[filename]); err != nil {
			return err
		}
		log.Printf("%s file generated successfully.", filepath.Base(filename))
	}

	if config.MarkdownOutput != "" {
		files, err := render.Markdown(config.MarkdownOutput, catalog)
		if err != nil {
			return err
		}
		for _, filename := range files {
			log.Println(filename)
		}
	}
	return nil
}
