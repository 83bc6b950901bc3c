package batch

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/goal"
)

// MetadataHeader is the first row of the metadata CSV.
var MetadataHeader = []string{"instance", "instance_raw", "goal", "standpoint"}

const filePerm = 0o644

// InstanceName returns "instance_{index}".
func InstanceName(index int) string { return "instance_" + strconv.Itoa(index) }

// FileName returns the goal file name "instance_{index}_{suffix}.lp".
func FileName(index int, g goal.Goal) string {
	return InstanceName(index) + "_" + g.Suffix() + ".lp"
}

// ClearDir makes sure path exists and is empty. Files, links and
// sub-directories are removed; the directory itself is kept.
func ClearDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return errors.Wrapf(err, "failed to list %s", path)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(path, e.Name())); err != nil {
			return errors.Wrapf(err, "failed to remove %s", filepath.Join(path, e.Name()))
		}
	}
	return nil
}

// WriteMetadata writes the header followed by rows as CSV with CRLF line
// endings.
func WriteMetadata(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.UseCRLF = true
	if err := w.Write(MetadataHeader); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := w.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return f.Close()
}

func writeText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), filePerm); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
