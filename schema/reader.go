package schema

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadFile reads the schema template at filename. A missing file
// produces a *MissingInputError.
func ReadFile(filename string) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingInputError{Path: filename}
		}
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	records, err := Read(f)
	return records, errors.Wrapf(err, "reading %s", filename)
}

// Read parses template rows from r, in row order
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []Record{}, nil
	}
	if err != nil {
		return nil, malformed(err)
	}

	index := map[string]int{}
	for k, v := range header {
		if _, ok := index[v]; !ok {
			index[v] = k
		}
	}
	fields := (*Record)(nil).Fields()
	for _, field := range fields {
		if _, ok := index[field]; !ok {
			return nil, &MalformedRecordError{Line: 1, Field: field}
		}
	}

	result := []Record{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}
		// short rows read missing trailing fields as empty
		field := func(name string) string {
			if idx := index[name]; idx < len(row) {
				return row[idx]
			}
			return ""
		}
		result = append(result, Record{
			Type:          field("type"),
			DatabaseName:  field("database_name"),
			TableName:     field("table_name"),
			ColumnName:    field("column_name"),
			ColumnType:    field("column_type"),
			ColumnComment: field("column_comment"),
		})
	}
	return result, nil
}

func malformed(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &MalformedRecordError{Line: parseErr.StartLine, Err: parseErr.Err}
	}
	return errors.WithStack(err)
}
