package scrape

import (
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HTTPScraper", func() {
	var (
		scraper  *HTTPScraper
		ts       *httptest.Server
		gotUA    string
		status   int
		pageBody string
	)

	BeforeEach(func() {
		status = http.StatusOK
		pageBody = `<table><tr><th>Date</th><th>Principal</th></tr><tr><td>01/15/2024</td><td>1000</td></tr></table>`
		ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.WriteHeader(status)
			w.Write([]byte(pageBody))
		}))
		scraper = NewHTTPScraper(5 * time.Second)
	})

	AfterEach(func() {
		ts.Close()
	})

	It("fetches and parses the page", func() {
		doc, err := scraper.FetchDocument(ts.URL)

		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Tables).To(HaveLen(1))
		Expect(doc.Tables[0].Headers).To(Equal([]string{"Date", "Principal"}))
	})

	It("sends a browser User-Agent", func() {
		_, err := scraper.FetchDocument(ts.URL)

		Expect(err).NotTo(HaveOccurred())
		Expect(gotUA).To(ContainSubstring("Mozilla/5.0"))
	})

	It("fails on non-2xx responses", func() {
		status = http.StatusForbidden

		_, err := scraper.FetchDocument(ts.URL)

		Expect(err).To(MatchError(ContainSubstring("status 403")))
	})

	It("fails on unreachable hosts", func() {
		ts.Close()

		_, err := scraper.FetchDocument(ts.URL)

		Expect(err).To(HaveOccurred())
	})
})
