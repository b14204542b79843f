package scrape

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var unwantedChars = regexp.MustCompile(`[^\w\s$€£¥₱.,:\-/()%#]`)

// cleanText collapses whitespace and strips characters that never appear in
// ledger cells.
func cleanText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = unwantedChars.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParseDocument reads HTML and collects every table-like structure on the
// page, plus key/value text blocks usable as a fallback when no table
// qualifies.
func ParseDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	parsed := &Document{}
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		if t, ok := parseTable(sel); ok {
			parsed.Tables = append(parsed.Tables, t)
		}
	})
	parsed.KeyValues = parseKeyValues(doc)
	return parsed, nil
}

// parseTable finds the header row of a table and aligns the remaining rows
// to it. Header detection tries th cells first, then bold td cells (a common
// header style on ledger pages), then falls back to the first row.
func parseTable(table *goquery.Selection) (Table, bool) {
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return Table{}, false
	}

	headerIdx := -1
	var headers []string
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		if th := row.Find("th"); th.Length() > 0 {
			headers = cellTexts(th)
			headerIdx = i
			return false
		}
		if td := row.Find("td"); td.Length() > 0 && boldCellCount(td) > 0 {
			headers = cellTexts(td)
			headerIdx = i
			return false
		}
		return true
	})
	if headerIdx == -1 {
		headers = cellTexts(rows.First().Find("td, th"))
		headerIdx = 0
	}
	if len(headers) == 0 {
		return Table{}, false
	}

	t := Table{Headers: headers}
	rows.Each(func(i int, row *goquery.Selection) {
		if i <= headerIdx {
			return
		}
		cells := cellTexts(row.Find("td, th"))
		if len(cells) == 0 {
			return
		}
		// Pad or truncate to the header width.
		aligned := make([]string, len(headers))
		copy(aligned, cells)
		t.Rows = append(t.Rows, aligned)
	})
	return t, true
}

func cellTexts(cells *goquery.Selection) []string {
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, cleanText(cell.Text()))
	})
	return texts
}

func boldCellCount(cells *goquery.Selection) int {
	count := 0
	cells.Each(func(_ int, cell *goquery.Selection) {
		if cell.Find("b, strong").Length() > 0 {
			count++
			return
		}
		if style, ok := cell.Attr("style"); ok && strings.Contains(style, "font-weight:bold") {
			count++
		}
	})
	return count
}

// parseKeyValues collects "Label: value" pairs from leaf div/span/p
// elements. Some source pages lay records out this way instead of a table.
func parseKeyValues(doc *goquery.Document) []KeyValue {
	var pairs []KeyValue
	doc.Find("div, span, p").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		text := cleanText(sel.Text())
		key, value, found := strings.Cut(text, ":")
		if !found {
			return
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			return
		}
		pairs = append(pairs, KeyValue{Key: key, Value: value})
	})
	return pairs
}
