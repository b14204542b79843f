package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Field identifies one canonical output column.
type Field string

const (
	FieldReceiptNo   Field = "Receipt No"
	FieldDate        Field = "Date"
	FieldPrincipal   Field = "Principal"
	FieldPen         Field = "Pen"
	FieldCBU         Field = "CBU"
	FieldCBUWithdraw Field = "CBU withdraw"
	FieldCollector   Field = "Collector"

	FieldPrincipalPassBook Field = "Principal_PassBook"
	FieldPrincipalVariance Field = "Principal_Variance"
	FieldPrincipalRemarks  Field = "Principal_Remarks"

	FieldCBUPassBook Field = "CBU_PassBook"
	FieldCBUVariance Field = "CBU_Variance"
	FieldCBURemarks  Field = "CBU_Remarks"

	FieldCBUWithdrawPassBook Field = "CBU_withdraw_PassBook"
	FieldCBUWithdrawVariance Field = "CBU_withdraw_Variance"
	FieldCBUWithdrawRemarks  Field = "CBU_withdraw_Remarks"
)

// exportColumns is the fixed spreadsheet column order.
var exportColumns = []Field{
	FieldReceiptNo, FieldDate,
	FieldPrincipal, FieldPen, FieldPrincipalPassBook, FieldPrincipalVariance, FieldPrincipalRemarks,
	FieldCBU, FieldCBUPassBook, FieldCBUVariance, FieldCBURemarks,
	FieldCBUWithdraw, FieldCBUWithdrawPassBook, FieldCBUWithdrawVariance, FieldCBUWithdrawRemarks,
	FieldCollector,
}

// numericFields hold decimal values; everything else is free text.
var numericFields = map[Field]bool{
	FieldPrincipal:           true,
	FieldPen:                 true,
	FieldCBU:                 true,
	FieldCBUWithdraw:         true,
	FieldPrincipalPassBook:   true,
	FieldPrincipalVariance:   true,
	FieldCBUPassBook:         true,
	FieldCBUVariance:         true,
	FieldCBUWithdrawPassBook: true,
	FieldCBUWithdrawVariance: true,
}

// reconciledFields are the inputs to the variance formulas; editing one
// triggers a recompute of the derived triples.
var reconciledFields = map[Field]bool{
	FieldPrincipal:           true,
	FieldPen:                 true,
	FieldCBU:                 true,
	FieldCBUWithdraw:         true,
	FieldPrincipalPassBook:   true,
	FieldCBUPassBook:         true,
	FieldCBUWithdrawPassBook: true,
}

// Record is one ledger row together with its reconciliation fields.
type Record struct {
	RowID string `json:"row_id"`

	ReceiptNo   string          `json:"receipt_no"`
	Date        string          `json:"date"`
	Principal   decimal.Decimal `json:"principal"`
	Pen         decimal.Decimal `json:"pen"`
	CBU         decimal.Decimal `json:"cbu"`
	CBUWithdraw decimal.Decimal `json:"cbu_withdraw"`
	Collector   string          `json:"collector"`

	PrincipalPassBook decimal.Decimal `json:"principal_passbook"`
	PrincipalVariance decimal.Decimal `json:"principal_variance"`
	PrincipalRemarks  string          `json:"principal_remarks"`

	CBUPassBook decimal.Decimal `json:"cbu_passbook"`
	CBUVariance decimal.Decimal `json:"cbu_variance"`
	CBURemarks  string          `json:"cbu_remarks"`

	CBUWithdrawPassBook decimal.Decimal `json:"cbu_withdraw_passbook"`
	CBUWithdrawVariance decimal.Decimal `json:"cbu_withdraw_variance"`
	CBUWithdrawRemarks  string          `json:"cbu_withdraw_remarks"`
}

// ParseField resolves a wire-format field name, accepting the same loose
// spellings the header mapper does.
func ParseField(s string) (Field, error) {
	if f, ok := MapHeader(s); ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown field %q", ErrInvalidEdit, s)
}

// Amount returns the decimal value of a numeric field, zero for text fields.
func (r *Record) Amount(f Field) decimal.Decimal {
	switch f {
	case FieldPrincipal:
		return r.Principal
	case FieldPen:
		return r.Pen
	case FieldCBU:
		return r.CBU
	case FieldCBUWithdraw:
		return r.CBUWithdraw
	case FieldPrincipalPassBook:
		return r.PrincipalPassBook
	case FieldPrincipalVariance:
		return r.PrincipalVariance
	case FieldCBUPassBook:
		return r.CBUPassBook
	case FieldCBUVariance:
		return r.CBUVariance
	case FieldCBUWithdrawPassBook:
		return r.CBUWithdrawPassBook
	case FieldCBUWithdrawVariance:
		return r.CBUWithdrawVariance
	}
	return decimal.Zero
}

func (r *Record) setAmount(f Field, d decimal.Decimal) {
	switch f {
	case FieldPrincipal:
		r.Principal = d
	case FieldPen:
		r.Pen = d
	case FieldCBU:
		r.CBU = d
	case FieldCBUWithdraw:
		r.CBUWithdraw = d
	case FieldPrincipalPassBook:
		r.PrincipalPassBook = d
	case FieldPrincipalVariance:
		r.PrincipalVariance = d
	case FieldCBUPassBook:
		r.CBUPassBook = d
	case FieldCBUVariance:
		r.CBUVariance = d
	case FieldCBUWithdrawPassBook:
		r.CBUWithdrawPassBook = d
	case FieldCBUWithdrawVariance:
		r.CBUWithdrawVariance = d
	}
}

// Value returns the display string for any field.
func (r *Record) Value(f Field) string {
	switch f {
	case FieldReceiptNo:
		return r.ReceiptNo
	case FieldDate:
		return r.Date
	case FieldCollector:
		return r.Collector
	case FieldPrincipalRemarks:
		return r.PrincipalRemarks
	case FieldCBURemarks:
		return r.CBURemarks
	case FieldCBUWithdrawRemarks:
		return r.CBUWithdrawRemarks
	}
	return r.Amount(f).String()
}

// Set applies a raw value to a field. Numeric fields reject text that does
// not parse as a decimal; the record is untouched on error. An empty value
// resets a numeric field to zero.
func (r *Record) Set(f Field, value string) error {
	value = strings.TrimSpace(value)
	if numericFields[f] {
		if value == "" {
			r.setAmount(f, decimal.Zero)
			return nil
		}
		d, ok := parseAmount(value)
		if !ok {
			return fmt.Errorf("%w: %q is not a number for %s", ErrInvalidEdit, value, f)
		}
		r.setAmount(f, d)
		return nil
	}
	switch f {
	case FieldReceiptNo:
		r.ReceiptNo = value
	case FieldDate:
		r.Date = value
	case FieldCollector:
		r.Collector = value
	case FieldPrincipalRemarks:
		r.PrincipalRemarks = value
	case FieldCBURemarks:
		r.CBURemarks = value
	case FieldCBUWithdrawRemarks:
		r.CBUWithdrawRemarks = value
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidEdit, f)
	}
	return nil
}
