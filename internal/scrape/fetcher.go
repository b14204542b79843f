package scrape

import (
	"fmt"
	"net/http"
	"time"
)

// Some ledger hosts refuse requests without a browser User-Agent.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// HTTPScraper implements the Scraper interface over plain HTTP
type HTTPScraper struct {
	client    *http.Client
	userAgent string
}

// NewHTTPScraper creates a new HTTPScraper with the given request timeout.
// A non-positive timeout falls back to 30 seconds.
func NewHTTPScraper(timeout time.Duration) *HTTPScraper {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPScraper{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// FetchDocument downloads a page and parses its table-like structures
func (s *HTTPScraper) FetchDocument(url string) (*Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := ParseDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}

// Close closes the scraper (no-op for HTTP client)
func (s *HTTPScraper) Close() error {
	return nil
}
