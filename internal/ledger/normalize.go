package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// amountSymbols strips currency symbols and thousands separators before
// decimal parsing.
var amountSymbols = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "", "₱", "", ",", "", " ", "",
)

// parseAmount parses a ledger cell as a decimal. Negative values are kept
// as-is. ok is false when the cell did not parse.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = amountSymbols.Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// summaryKeywords mark rows that aggregate other rows; they are not records.
var summaryKeywords = []string{"total", "subtotal", "grand total", "summary", "balance"}

// IsSummaryRow reports whether any cell marks the row as an aggregate.
func IsSummaryRow(cells []string) bool {
	for _, c := range cells {
		lower := strings.ToLower(c)
		for _, kw := range summaryKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// ColumnMapping resolves a table's headers to canonical fields by position.
// Unmapped columns are absent from the result.
func ColumnMapping(headers []string) map[int]Field {
	mapping := make(map[int]Field)
	for i, h := range headers {
		if f, ok := MapHeader(h); ok {
			mapping[i] = f
		}
	}
	return mapping
}

// hasRowData reports whether any mapped cell carries text.
func hasRowData(cells []string, mapping map[int]Field) bool {
	for i := range mapping {
		if i < len(cells) && strings.TrimSpace(cells[i]) != "" {
			return true
		}
	}
	return false
}

// setRaw assigns one raw cell value to its field. Text fields are trimmed
// and kept literally; the Date cell passes through unchanged so sorting can
// deal with it later. Returns 1 when a numeric cell failed to parse and
// defaulted to zero.
func setRaw(rec *Record, f Field, raw string) int {
	raw = strings.TrimSpace(raw)
	switch f {
	case FieldReceiptNo:
		rec.ReceiptNo = raw
	case FieldDate:
		rec.Date = raw
	case FieldCollector:
		rec.Collector = raw
	case FieldPrincipalRemarks:
		rec.PrincipalRemarks = raw
	case FieldCBURemarks:
		rec.CBURemarks = raw
	case FieldCBUWithdrawRemarks:
		rec.CBUWithdrawRemarks = raw
	default:
		if raw == "" {
			return 0
		}
		d, ok := parseAmount(raw)
		rec.setAmount(f, d)
		if !ok {
			return 1
		}
	}
	return 0
}

// NormalizeRow converts one raw table row into a Record using the column
// mapping. defaults counts numeric cells that failed to parse and fell back
// to zero, for caller diagnostics.
func NormalizeRow(id string, cells []string, mapping map[int]Field) (rec *Record, defaults int) {
	rec = &Record{RowID: id}
	for i, f := range mapping {
		if i >= len(cells) {
			continue
		}
		defaults += setRaw(rec, f, cells[i])
	}
	return rec, defaults
}

// NormalizeFields converts a field→value map into a Record, same rules as
// NormalizeRow. Used for user-supplied rows and the key/value fallback.
func NormalizeFields(id string, fields map[Field]string) (rec *Record, defaults int) {
	rec = &Record{RowID: id}
	for f, raw := range fields {
		defaults += setRaw(rec, f, raw)
	}
	return rec, defaults
}
