package ledger

import "github.com/shopspring/decimal"

// Recompute derives the variance and remarks triples from the current
// scraped and passbook values. It is pure and total: the input record is
// not modified, and recomputing an unchanged record yields an identical
// result. The same function serves the bulk post-extraction pass and every
// incremental edit.
func Recompute(r Record) Record {
	scrapedPrincipal := r.Principal.Add(r.Pen)
	r.PrincipalVariance = scrapedPrincipal.Sub(r.PrincipalPassBook)
	r.PrincipalRemarks = remarks(scrapedPrincipal, r.PrincipalPassBook, r.PrincipalVariance)

	r.CBUVariance = r.CBU.Sub(r.CBUPassBook)
	r.CBURemarks = remarks(r.CBU, r.CBUPassBook, r.CBUVariance)

	r.CBUWithdrawVariance = r.CBUWithdraw.Sub(r.CBUWithdrawPassBook)
	r.CBUWithdrawRemarks = remarks(r.CBUWithdraw, r.CBUWithdrawPassBook, r.CBUWithdrawVariance)

	return r
}

// remarks classifies one measure. The zero-variance check runs first so an
// exact match always reads as reconciled.
func remarks(scraped, passbook, variance decimal.Decimal) string {
	switch {
	case variance.IsZero():
		return ""
	case scraped.IsPositive() && passbook.IsZero():
		return "Not Updated"
	case scraped.IsZero() && passbook.IsPositive():
		return "Unremitted"
	case passbook.GreaterThan(scraped):
		return "Understated"
	default:
		return "Overstated"
	}
}

// RenderValue formats a variance for display. Negatives use accounting
// parentheses around the absolute value; zero stays a plain "0.00" rather
// than passing through the parenthesis rule. The stored value is always the
// signed number, this transform lives only at the boundary.
func RenderValue(v decimal.Decimal) string {
	if v.IsZero() {
		return "0.00"
	}
	if v.IsNegative() {
		return "(" + v.Abs().StringFixed(2) + ")"
	}
	return v.StringFixed(2)
}
