package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "bookingdesk/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVOptions configures CSV writing behavior
type CSVOptions struct {
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes the table to w.
func WriteCSV(w io.Writer, table Table, opts CSVOptions) error {
	if opts.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return apperrors.NewExportError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(w)
	if len(table.Headers) > 0 {
		if err := writer.Write(table.Headers); err != nil {
			return apperrors.NewExportError("failed to write headers", err)
		}
	}
	for i, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return apperrors.NewExportError(fmt.Sprintf("failed to write record %d", i), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewExportError("failed to flush csv", err)
	}
	return nil
}

// WriteFile writes the table to path in the given format, creating parent
// directories as needed.
func WriteFile(path string, format Format, table Table) error {
	slog.Info("Writing export file",
		slog.String("file_path", path),
		slog.String("format", string(format)),
		slog.Int("record_count", len(table.Rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewExportError("failed to create directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewExportError("failed to create file", err).WithContext("path", path)
	}

	if err := Write(file, format, table); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return apperrors.NewExportError("failed to close file", err).WithContext("path", path)
	}
	return nil
}
