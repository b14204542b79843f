package scrape

// Table is one table-like structure found on a page: the header cell texts
// plus data rows aligned to the header width.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// KeyValue is a "Label: value" pair pulled from non-table markup.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Document is the parsed form of a fetched page.
type Document struct {
	Tables    []Table
	KeyValues []KeyValue
}

// Scraper defines the interface for fetching and parsing source pages
type Scraper interface {
	// FetchDocument downloads a page and parses its table-like structures
	FetchDocument(url string) (*Document, error)
	// Close releases resources
	Close() error
}
