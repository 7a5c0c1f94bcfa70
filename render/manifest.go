package render

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/titpetric/athena-gen/naming"
	"github.com/titpetric/athena-gen/schema"
)

type (
	// Manifest describes the generated catalog resources for the
	// functions that query them at runtime.
	Manifest struct {
		DataBucket   string             `yaml:"dataBucket"`
		OutputBucket string             `yaml:"outputBucket"`
		Databases    []ManifestDatabase `yaml:"databases"`
	}

	// ManifestDatabase is a generated database and the tables it owns
	ManifestDatabase struct {
		Name      string          `yaml:"name"`
		Construct string          `yaml:"construct,omitempty"`
		Field     string          `yaml:"field,omitempty"`
		Tables    []ManifestTable `yaml:"tables,omitempty"`
	}

	// ManifestTable is a generated table
	ManifestTable struct {
		Name      string           `yaml:"name"`
		Construct string           `yaml:"construct"`
		Prefix    string           `yaml:"prefix"`
		Columns   []ManifestColumn `yaml:"columns"`
	}

	// ManifestColumn is a table column
	ManifestColumn struct {
		Name    string `yaml:"name"`
		Type    string `yaml:"type"`
		Comment string `yaml:"comment,omitempty"`
	}
)

// NewManifest builds a *Manifest. Databases come in first-seen order,
// followed by databases which own tables without being declared;
// undeclared databases carry no construct or field.
func NewManifest(c *schema.Catalog) *Manifest {
	result := &Manifest{
		DataBucket:   DataBucketPattern,
		OutputBucket: OutputBucketPattern,
		Databases:    []ManifestDatabase{},
	}

	declared := map[string]bool{}
	names := c.Databases()
	for _, v := range names {
		declared[v] = true
	}
	for _, v := range c.Owners() {
		if !declared[v] {
			names = append(names, v)
		}
	}

	for _, name := range names {
		database := ManifestDatabase{Name: name}
		if declared[name] {
			database.Construct = naming.DatabaseConstruct(name)
			database.Field = naming.DatabaseField(name)
		}
		for _, table := range c.Tables(name) {
			key := schema.TableKey{Database: name, Table: table}
			columns := []ManifestColumn{}
			for _, column := range c.Columns(key) {
				columns = append(columns, ManifestColumn(column))
			}
			database.Tables = append(database.Tables, ManifestTable{
				Name:      table,
				Construct: naming.TableConstruct(table),
				Prefix:    name + "/" + table,
				Columns:   columns,
			})
		}
		result.Databases = append(result.Databases, database)
	}
	return result
}

// ManifestYAML renders the catalog manifest as YAML
func ManifestYAML(c *schema.Catalog) ([]byte, error) {
	out, err := yaml.Marshal(NewManifest(c))
	return out, errors.Wrap(err, "encoding manifest")
}
