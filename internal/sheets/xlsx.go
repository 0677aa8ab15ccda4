package sheets

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "bookingdesk/internal/errors"
)

// XLSXSource reads one tab of a workbook on disk. The file is opened on
// every call so edits are picked up without a restart.
type XLSXSource struct {
	path string
	tab  string
}

// NewXLSXSource creates a source for path. An empty tab reads the first
// sheet of the workbook.
func NewXLSXSource(path, tab string) *XLSXSource {
	return &XLSXSource{path: path, tab: tab}
}

// Name implements Source.
func (s *XLSXSource) Name() string {
	return "xlsx"
}

// Rows implements Source.
func (s *XLSXSource) Rows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, apperrors.NewSourceError("failed to open workbook", err).
			WithContext("path", s.path)
	}
	defer f.Close()

	tab := s.tab
	if tab == "" {
		tab = f.GetSheetName(0)
	}

	rows, err := f.GetRows(tab)
	if err != nil {
		return nil, apperrors.NewSourceError(fmt.Sprintf("failed to read tab %q", tab), err).
			WithContext("path", s.path)
	}
	return rows, nil
}
