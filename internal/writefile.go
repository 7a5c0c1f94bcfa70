package internal

import (
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

// WriteFile writes contents to filename through a synced temporary file
// in the same folder, so filename is either fully written or left untouched.
func WriteFile(filename string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.WithStack(err)
	}
	return errors.Wrapf(renameio.WriteFile(filename, contents, 0644), "writing %s", filename)
}
