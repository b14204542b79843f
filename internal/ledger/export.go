package ledger

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Payment Data"

var varianceFields = map[Field]bool{
	FieldPrincipalVariance:   true,
	FieldCBUVariance:         true,
	FieldCBUWithdrawVariance: true,
}

var remarksFields = map[Field]bool{
	FieldPrincipalRemarks:   true,
	FieldCBURemarks:         true,
	FieldCBUWithdrawRemarks: true,
}

// exportedColumns drops columns that carry no data across the whole set.
// Remarks columns always survive so an all-reconciled export still reads as
// reconciled rather than missing.
func exportedColumns(rs *ResultSet) []Field {
	var cols []Field
	for _, f := range exportColumns {
		if remarksFields[f] || columnHasData(rs, f) {
			cols = append(cols, f)
		}
	}
	return cols
}

func columnHasData(rs *ResultSet, f Field) bool {
	for _, rec := range rs.Records {
		if numericFields[f] {
			if !rec.Amount(f).IsZero() {
				return true
			}
		} else if rec.Value(f) != "" {
			return true
		}
	}
	return false
}

// exportValue renders one cell. Variances use the accounting display form;
// everything else exports its stored value.
func exportValue(rec *Record, f Field) string {
	if varianceFields[f] {
		return RenderValue(rec.Amount(f))
	}
	if numericFields[f] {
		return rec.Amount(f).StringFixed(2)
	}
	return rec.Value(f)
}

// WriteXLSX renders the result set as a single-sheet workbook and returns
// the file bytes.
func WriteXLSX(rs *ResultSet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	cols := exportedColumns(rs)
	widths := make([]int, len(cols))
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, string(col)); err != nil {
			return nil, err
		}
		widths[i] = len(col)
	}

	for rowIdx, rec := range rs.Records {
		for i, col := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			value := exportValue(rec, col)
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
	}

	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := float64(w + 2)
		if width > 50 {
			width = 50
		}
		if err := f.SetColWidth(exportSheet, name, name, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
