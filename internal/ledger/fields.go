package ledger

import "strings"

// headerAliases maps normalized header text to its canonical field. Keys are
// lowercase with single spaces, the output of normalizeHeader.
var headerAliases = map[string]Field{
	"receipt no":     FieldReceiptNo,
	"receipt no.":    FieldReceiptNo,
	"receipt":        FieldReceiptNo,
	"receipt number": FieldReceiptNo,
	"receipt #":      FieldReceiptNo,
	"or no":          FieldReceiptNo,
	"or no.":         FieldReceiptNo,
	"ref no":         FieldReceiptNo,
	"reference":      FieldReceiptNo,
	"transaction id": FieldReceiptNo,

	"date": FieldDate,

	"principal": FieldPrincipal,
	"pokok":     FieldPrincipal,

	"pen":     FieldPen,
	"penalty": FieldPen,
	"denda":   FieldPen,

	"cbu": FieldCBU,

	"cbu withdraw":   FieldCBUWithdraw,
	"cbu withdrawal": FieldCBUWithdraw,
	"cbu tarik":      FieldCBUWithdraw,

	"collector": FieldCollector,
	"kolektor":  FieldCollector,

	"principal passbook": FieldPrincipalPassBook,
	"principal variance": FieldPrincipalVariance,
	"principal remarks":  FieldPrincipalRemarks,

	"cbu passbook": FieldCBUPassBook,
	"cbu variance": FieldCBUVariance,
	"cbu remarks":  FieldCBURemarks,

	"cbu withdraw passbook": FieldCBUWithdrawPassBook,
	"cbu withdraw variance": FieldCBUWithdrawVariance,
	"cbu withdraw remarks":  FieldCBUWithdrawRemarks,
}

// normalizeHeader lowercases a header and collapses runs of whitespace and
// underscores into single spaces.
func normalizeHeader(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	raw = strings.ReplaceAll(raw, "_", " ")
	return strings.Join(strings.Fields(raw), " ")
}

// MapHeader resolves an observed header cell to its canonical field. The
// mapping is pure: same input, same output. Unmapped headers report ok=false
// and their column is ignored.
func MapHeader(raw string) (Field, bool) {
	f, ok := headerAliases[normalizeHeader(raw)]
	return f, ok
}
