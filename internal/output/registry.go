package output

import (
	"fmt"
	"io"
	"os"

	"rnaseqde/internal/gene"
)

// TableWriters maps an export format to its writer.
var TableWriters = map[string]func(io.Writer, gene.Table) error{
	FormatTSV:  func(w io.Writer, t gene.Table) error { return WriteTSV(w, t, true) },
	FormatJSON: WriteJSON,
}

// WriteTable dispatches on format.
func WriteTable(format string, w io.Writer, t gene.Table) error {
	fn, ok := TableWriters[format]
	if !ok {
		return fmt.Errorf("unknown table format %q (no writer registered)", format)
	}
	return fn(w, t)
}

// WriteTableFile exports t to path, replacing any existing file.
func WriteTableFile(path, format string, t gene.Table) (err error) {
	if _, ok := TableWriters[format]; !ok {
		return fmt.Errorf("unknown table format %q (no writer registered)", format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write table %s: %w", path, cerr)
		}
	}()
	if err := WriteTable(format, f, t); err != nil {
		return fmt.Errorf("write table %s: %w", path, err)
	}
	return nil
}
