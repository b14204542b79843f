package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ResultSet is the ordered record collection for one extraction session.
// Ordering is by parseable date ascending, insertion order for ties; rows
// with unparseable dates keep their relative order after all parseable
// ones.
type ResultSet struct {
	SourceURL string    `json:"source_url,omitempty"`
	Records   []*Record `json:"records"`
}

// dateFormats covers the numeric date styles seen on source pages;
// MM/DD/YYYY is the primary one.
var dateFormats = []string{
	"1/2/2006",
	"1-2-2006",
	"2006-1-2",
	"2006/1/2",
}

// parseRecordDate reports whether the date string is sortable, and its
// parsed value when it is.
func parseRecordDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (rs *ResultSet) sortByDate() {
	sort.SliceStable(rs.Records, func(i, j int) bool {
		ti, oki := parseRecordDate(rs.Records[i].Date)
		tj, okj := parseRecordDate(rs.Records[j].Date)
		switch {
		case oki && okj:
			return ti.Before(tj)
		case oki:
			return true
		default:
			return false
		}
	})
}

// Insert normalizes the supplied fields into a new reconciled record and
// re-sorts the set. The caller provides the fresh row id; ids are never
// reused.
func (rs *ResultSet) Insert(id string, fields map[Field]string) *Record {
	rec, _ := NormalizeFields(id, fields)
	*rec = Recompute(*rec)
	rs.Records = append(rs.Records, rec)
	rs.sortByDate()
	return rec
}

// Find returns the record with the given row id.
func (rs *ResultSet) Find(rowID string) (*Record, error) {
	for _, r := range rs.Records {
		if r.RowID == rowID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, rowID)
}

// Update applies one field edit. Invalid values are rejected before any
// mutation; edits to variance-formula inputs recompute the derived triples.
// Ordering is left unchanged.
func (rs *ResultSet) Update(rowID string, f Field, value string) (*Record, error) {
	rec, err := rs.Find(rowID)
	if err != nil {
		return nil, err
	}
	updated := *rec
	if err := updated.Set(f, value); err != nil {
		return nil, err
	}
	if reconciledFields[f] {
		updated = Recompute(updated)
	}
	*rec = updated
	return rec, nil
}

// Delete removes a record by row id. Remaining ids are untouched.
func (rs *ResultSet) Delete(rowID string) error {
	for i, r := range rs.Records {
		if r.RowID == rowID {
			rs.Records = append(rs.Records[:i], rs.Records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, rowID)
}
