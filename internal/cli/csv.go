package cli

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV exports rows to path as UTF-8, comma-delimited CSV with a header
// row. An empty result produces an empty file, not a header-only one.
func WriteCSV(path string, headers []string, rows [][]string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	if len(rows) == 0 {
		return nil
	}

	w := csv.NewWriter(file)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ExportCSV writes rows when path is set and confirms the export in human mode
func ExportCSV(formatter *OutputFormatter, path string, headers []string, rows [][]string) error {
	if path == "" {
		return nil
	}
	if err := WriteCSV(path, headers, rows); err != nil {
		return Fail(formatter, err)
	}
	if formatter.JSON || formatter.Quiet {
		return nil
	}
	if len(rows) == 0 {
		fmt.Printf("Saved empty CSV to %s\n", path)
	} else {
		fmt.Printf("CSV saved to %s\n", path)
	}
	return nil
}
