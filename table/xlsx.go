package table

import (
	"github.com/xuri/excelize/v2"

	"github.com/teranos/eventgen/errors"
)

// defaultSheet is the sheet every new workbook starts with
const defaultSheet = "Sheet1"

// XLSX is the spreadsheet codec: one workbook per table, one sheet named after it.
type XLSX struct{}

func (XLSX) Format() string { return "xlsx" }

// Write saves a workbook whose only sheet holds the header and rows as text cells.
func (XLSX) Write(path string, schema Schema, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(schema)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return errors.Wrapf(err, "failed to create sheet %s", sheet)
	}
	f.SetActiveSheet(idx)
	if sheet != defaultSheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return errors.Wrap(err, "failed to drop default sheet")
		}
	}

	header := append([]string(nil), schema.Columns...)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write headers")
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
		values := row.Values(schema.Columns)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "failed to save workbook")
	}
	return nil
}

// Read loads the workbook's first sheet; its first row is the header.
func (XLSX) Read(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Newf("%s has no sheets", path)
	}

	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	if len(records) == 0 {
		return nil, errors.Newf("%s has no header row", path)
	}

	header := records[0]
	return &Table{
		Schema: Schema{Name: sheets[0], Columns: header},
		Rows:   rowsFromRecords(header, records[1:]),
	}, nil
}

// sheetName keeps within the 31-character sheet name limit.
func sheetName(schema Schema) string {
	name := schema.Name
	if name == "" {
		name = defaultSheet
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
