package ledger

import (
	"github.com/rmagtibay/passbook-recon/internal/scrape"
)

// selectionWeights are the scraped columns that count toward table
// selection. Date and Principal anchor the ledger shape, so they weigh
// double.
var selectionWeights = map[Field]int{
	FieldReceiptNo:   1,
	FieldDate:        2,
	FieldPrincipal:   2,
	FieldPen:         1,
	FieldCBU:         1,
	FieldCBUWithdraw: 1,
	FieldCollector:   1,
}

// A candidate needs at least this many mapped headers to qualify.
const minMappedHeaders = 2

// scoreTable counts weighted header matches and how many headers mapped.
func scoreTable(t scrape.Table) (score, mapped int) {
	for _, h := range t.Headers {
		f, ok := MapHeader(h)
		if !ok {
			continue
		}
		if w, scored := selectionWeights[f]; scored {
			score += w
			mapped++
		}
	}
	return score, mapped
}

// SelectTable picks the candidate most likely to be the payment ledger.
// Tables with no data rows or fewer than two mapped headers are
// disqualified. Ties prefer more rows, then earlier document order.
func SelectTable(tables []scrape.Table) (scrape.Table, error) {
	bestIdx := -1
	bestScore := 0
	for i, t := range tables {
		if len(t.Rows) == 0 {
			continue
		}
		score, mapped := scoreTable(t)
		if mapped < minMappedHeaders {
			continue
		}
		switch {
		case bestIdx == -1 || score > bestScore:
			bestIdx, bestScore = i, score
		case score == bestScore && len(t.Rows) > len(tables[bestIdx].Rows):
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return scrape.Table{}, ErrTableNotFound
	}
	return tables[bestIdx], nil
}
