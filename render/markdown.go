package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"github.com/pkg/errors"

	"github.com/titpetric/athena-gen/internal"
	"github.com/titpetric/athena-gen/schema"
)

// MarkdownTable renders a markdown document describing one table
func MarkdownTable(key schema.TableKey, columns []schema.Column) []byte {
	// calculate initial padding from table header
	titles := []string{"Name", "Type", "Comment"}
	padding := map[string]int{}
	for _, v := range titles {
		padding[v] = len(v)
	}

	max := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}

	for _, column := range columns {
		padding["Name"] = max(padding["Name"], utf8.RuneCountInString(column.Name))
		padding["Type"] = max(padding["Type"], utf8.RuneCountInString(column.Type))
		padding["Comment"] = max(padding["Comment"], utf8.RuneCountInString(column.Comment))
	}

	// %%-%ds becomes %-10s, which right pads string to len=10
	format := strings.Repeat("| %%-%ds ", len(titles)) + "|\n"
	format = fmt.Sprintf(format, padding["Name"], padding["Type"], padding["Comment"])

	buf := bytes.NewBufferString(fmt.Sprintf("# %s\n\n", key.Table))
	buf.WriteString(fmt.Sprintf("%s, stored in database `%s` under `%s/%s`.\n\n", inflect.Humanize(key.Table), key.Database, key.Database, key.Table))

	buf.WriteString(fmt.Sprintf(format, "Name", "Type", "Comment"))

	// table header/body delimiter
	buf.WriteString(strings.Replace(fmt.Sprintf(format, "", "", ""), " ", "-", -1))

	for _, column := range columns {
		buf.WriteString(fmt.Sprintf(format, column.Name, column.Type, column.Comment))
	}
	return buf.Bytes()
}

// checkPathSegment rejects names that can't be used as a single file name
func checkPathSegment(name string) error {
	if name == "" || name == "." || name == ".." {
		return errors.Errorf("Invalid file name: %q", name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return errors.Errorf("File name contains a path separator: %q", name)
	}
	return nil
}

// Markdown writes a document per table under basePath/<database>/<table>.md
// and returns the written filenames.
func Markdown(basePath string, c *schema.Catalog) ([]string, error) {
	keys := c.TableKeys()
	for _, key := range keys {
		if err := checkPathSegment(key.Database); err != nil {
			return nil, errors.Wrapf(err, "database %q", key.Database)
		}
		if err := checkPathSegment(key.Table); err != nil {
			return nil, errors.Wrapf(err, "table %s", key)
		}
	}

	result := []string{}
	for _, key := range keys {
		filename := filepath.Join(basePath, key.Database, key.Table+".md")
		if err := internal.WriteFile(filename, MarkdownTable(key, c.Columns(key))); err != nil {
			return result, err
		}
		result = append(result, filename)
	}
	return result, nil
}
