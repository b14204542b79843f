package ledger

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/rmagtibay/passbook-recon/internal/scrape"
)

// IDGenerator generates unique identifiers for sessions and rows
type IDGenerator interface {
	Generate() string
}

type uuidGenerator struct{}

func (uuidGenerator) Generate() string {
	return uuid.NewString()
}

// Service handles extraction sessions and record edits
type Service struct {
	scraper  scrape.Scraper
	sessions Sessions
	idGen    IDGenerator
}

// NewService creates a new Service with the default ID generator
func NewService(scraper scrape.Scraper, sessions Sessions) *Service {
	return NewServiceWithDeps(scraper, sessions, uuidGenerator{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(scraper scrape.Scraper, sessions Sessions, idGen IDGenerator) *Service {
	return &Service{
		scraper:  scraper,
		sessions: sessions,
		idGen:    idGen,
	}
}

// ScrapeURL fetches a page, extracts its payment table, reconciles every
// record and stores the result set under a fresh session id.
func (s *Service) ScrapeURL(rawURL string) (string, *ResultSet, error) {
	doc, err := s.scraper.FetchDocument(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("fetching document: %w", err)
	}

	rs, defaults, err := s.extract(doc)
	if err != nil {
		return "", nil, err
	}
	rs.SourceURL = rawURL
	if defaults > 0 {
		slog.Info("Defaulted unparseable cells", "count", defaults, "url", rawURL)
	}

	sessionID := s.idGen.Generate()
	if err := s.sessions.Put(sessionID, rs); err != nil {
		return "", nil, fmt.Errorf("storing session: %w", err)
	}

	slog.Info("Extraction complete", "session_id", sessionID, "records", len(rs.Records))
	return sessionID, rs, nil
}

// extract builds a result set from the best-scoring table, falling back to
// key/value blocks when no table qualifies.
func (s *Service) extract(doc *scrape.Document) (*ResultSet, int, error) {
	table, err := SelectTable(doc.Tables)
	if err != nil {
		return s.extractKeyValues(doc, err)
	}

	mapping := ColumnMapping(table.Headers)
	rs := &ResultSet{}
	defaults := 0
	for _, cells := range table.Rows {
		if IsSummaryRow(cells) || !hasRowData(cells, mapping) {
			continue
		}
		rec, d := NormalizeRow(s.idGen.Generate(), cells, mapping)
		defaults += d
		*rec = Recompute(*rec)
		rs.Records = append(rs.Records, rec)
	}
	rs.sortByDate()
	return rs, defaults, nil
}

// extractKeyValues maps "Label: value" pairs into records. A repeated key
// starts a new record; fragments with fewer than two fields are discarded.
func (s *Service) extractKeyValues(doc *scrape.Document, selectErr error) (*ResultSet, int, error) {
	rs := &ResultSet{}
	defaults := 0
	fields := map[Field]string{}

	flush := func() {
		if len(fields) >= 2 {
			rec, d := NormalizeFields(s.idGen.Generate(), fields)
			defaults += d
			*rec = Recompute(*rec)
			rs.Records = append(rs.Records, rec)
		}
		fields = map[Field]string{}
	}

	for _, kv := range doc.KeyValues {
		f, ok := MapHeader(kv.Key)
		if !ok {
			continue
		}
		if _, dup := fields[f]; dup {
			flush()
		}
		fields[f] = kv.Value
	}
	flush()

	if len(rs.Records) == 0 {
		return nil, 0, selectErr
	}
	rs.sortByDate()
	return rs, defaults, nil
}

// GetResultSet retrieves the result set for a session
func (s *Service) GetResultSet(sessionID string) (*ResultSet, error) {
	return s.sessions.Get(sessionID)
}

// UpdateField applies one edit and persists the updated set. Derived
// variance and remarks fields are recomputed before the caller sees the
// record.
func (s *Service) UpdateField(sessionID, rowID string, f Field, value string) (*Record, error) {
	rs, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	rec, err := rs.Update(rowID, f, value)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Put(sessionID, rs); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	return rec, nil
}

// AddRow inserts a user-supplied row, re-sorting the session's records by
// date.
func (s *Service) AddRow(sessionID string, fields map[Field]string) (*Record, error) {
	rs, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	rec := rs.Insert(s.idGen.Generate(), fields)
	if err := s.sessions.Put(sessionID, rs); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	slog.Info("Added row", "session_id", sessionID, "row_id", rec.RowID, "records", len(rs.Records))
	return rec, nil
}

// DeleteRow removes a row from the session by its stable id.
func (s *Service) DeleteRow(sessionID, rowID string) error {
	rs, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	if err := rs.Delete(rowID); err != nil {
		return err
	}
	if err := s.sessions.Put(sessionID, rs); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	slog.Info("Deleted row", "session_id", sessionID, "row_id", rowID, "records", len(rs.Records))
	return nil
}

// ExportXLSX renders the session's records as a spreadsheet and returns the
// file bytes and a download filename.
func (s *Service) ExportXLSX(sessionID string) ([]byte, string, error) {
	rs, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, "", err
	}
	data, err := WriteXLSX(rs)
	if err != nil {
		return nil, "", fmt.Errorf("writing spreadsheet: %w", err)
	}
	return data, exportFilename(rs.SourceURL, sessionID), nil
}

// exportFilename mirrors the download name users already expect:
// payment_data_<domain>_<sid8>.xlsx.
func exportFilename(sourceURL, sessionID string) string {
	domain := "export"
	if u, err := url.Parse(sourceURL); err == nil && u.Host != "" {
		domain = strings.TrimPrefix(u.Host, "www.")
	}
	sid := sessionID
	if len(sid) > 8 {
		sid = sid[:8]
	}
	return fmt.Sprintf("payment_data_%s_%s.xlsx", domain, sid)
}
