package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// DefaultSessionTTL is how long an idle session stays retrievable.
const DefaultSessionTTL = 2 * time.Hour

var sessionsBucket = []byte("sessions")

// Sessions stores result sets keyed by session id
type Sessions interface {
	Put(sessionID string, rs *ResultSet) error
	Get(sessionID string) (*ResultSet, error)
	Delete(sessionID string) error
	Close() error
}

// sessionEnvelope wraps a stored result set with its write time so reads
// can enforce the TTL.
type sessionEnvelope struct {
	ResultSet *ResultSet `json:"result_set"`
	StoredAt  time.Time  `json:"stored_at"`
}

// BoltSessions is a Sessions implementation backed by a bbolt database.
// Expired entries are swept on every write, so the file does not grow
// unbounded between restarts.
type BoltSessions struct {
	db  *bbolt.DB
	ttl time.Duration
	now func() time.Time
}

// NewBoltSessions opens (or creates) the database at path. A non-positive
// ttl falls back to DefaultSessionTTL.
func NewBoltSessions(path string, ttl time.Duration) (*BoltSessions, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &BoltSessions{db: db, ttl: ttl, now: time.Now}, nil
}

func (s *BoltSessions) Put(sessionID string, rs *ResultSet) error {
	now := s.now()
	value, err := json.Marshal(sessionEnvelope{ResultSet: rs, StoredAt: now})
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sessionsBucket)
		if err := s.sweep(b, now); err != nil {
			return err
		}
		return b.Put([]byte(sessionID), value)
	})
}

func (s *BoltSessions) Get(sessionID string) (*ResultSet, error) {
	var env sessionEnvelope
	err := s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(sessionsBucket).Get([]byte(sessionID))
		if value == nil {
			return ErrSessionNotFound
		}
		return json.Unmarshal(value, &env)
	})
	if err != nil {
		return nil, err
	}
	if s.now().Sub(env.StoredAt) > s.ttl {
		return nil, ErrSessionNotFound
	}
	return env.ResultSet, nil
}

func (s *BoltSessions) Delete(sessionID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete([]byte(sessionID))
	})
}

func (s *BoltSessions) Close() error {
	return s.db.Close()
}

// sweep deletes every entry whose TTL has passed. Undecodable entries are
// dropped too; they can never be served.
func (s *BoltSessions) sweep(b *bbolt.Bucket, now time.Time) error {
	var expired [][]byte
	err := b.ForEach(func(k, v []byte) error {
		var env sessionEnvelope
		if err := json.Unmarshal(v, &env); err != nil || now.Sub(env.StoredAt) > s.ttl {
			key := make([]byte, len(k))
			copy(key, k)
			expired = append(expired, key)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, k := range expired {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
