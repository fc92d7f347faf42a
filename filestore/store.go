package filestore

import (
	"fmt"
	"os"
	"strings"

	"github.com/c360/inventory/errors"
	"github.com/c360/inventory/warehouse"
)

// headerPrefix marks the single comment line at the top of every
// inventory file. Lines starting with '#' are ignored on load.
const headerPrefix = "# Warehouse:"

// Save writes a warehouse snapshot to path as a text file: one header
// comment line followed by one wire-format record per product. The write
// truncates any existing file.
func Save(w *warehouse.Warehouse, path string) error {
	if w == nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: warehouse cannot be nil", errors.ErrInvalidArgument),
			"filestore", "Save", "warehouse validation")
	}
	if strings.TrimSpace(path) == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: path is required", errors.ErrInvalidArgument),
			"filestore", "Save", "path validation")
	}

	lines := make([]string, 0, w.Size()+1)
	lines = append(lines, headerPrefix+w.Name())
	lines = append(lines, warehouse.Export(w)...)

	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return errors.WrapTransient(err, "filestore", "Save", "write snapshot file")
	}
	return nil
}

// Load reads an inventory file and builds a new warehouse under the given
// name. Comment lines and blank lines are skipped; the first malformed
// record aborts the load with no partial result. Options (e.g. metrics)
// are forwarded to the new warehouse.
func Load(name, path string, opts ...warehouse.Option) (*warehouse.Warehouse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapTransient(err, "filestore", "Load", "read snapshot file")
	}

	records := make([]string, 0, 16)
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, line)
	}

	return warehouse.Import(name, records, opts...)
}
