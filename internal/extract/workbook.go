package extract

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WorkbookReader reads every sheet of an Office Open XML workbook.
type WorkbookReader struct{}

// Extensions returns the workbook extensions.
func (r *WorkbookReader) Extensions() []string {
	return []string{".xlsx", ".xlsm"}
}

// Read parses the workbook and returns its sheets in workbook order.
// Raw cell values are requested so stored numbers arrive unformatted.
func (r *WorkbookReader) Read(data []byte, skipRows int) ([]NamedSheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var sheets []NamedSheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		sheets = append(sheets, NamedSheet{Name: name, Sheet: tableFromRows(rows, skipRows)})
	}
	return sheets, nil
}
