package schema

import (
	"fmt"
)

// MissingInputError is returned when the template file doesn't exist
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("error: %s file does not exist", e.Path)
}

// MalformedRecordError is returned for a header without a recognized
// field, or input the CSV reader can't parse.
type MalformedRecordError struct {
	Line  int
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: missing field %q", e.Line, e.Field)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
