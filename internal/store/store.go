package store // import "github.com/Xunop/e-verse/internal/store"

import (
	"database/sql"
	"sync"
	"time"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("key not found")

// KV is the string key/value medium everything else persists through.
// Reads never fail: an unreadable entry is reported as absent.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Store is the sqlite backed KV.
type Store struct {
	db     *sql.DB
	dbLock sync.Mutex // dbLock serialises writes
	cache  sync.Map   // map[string]string
	// compressThreshold is the value size from which values are brotli compressed, 0 disables it
	compressThreshold int
}

func NewStore(db *sql.DB, compressThreshold int) *Store {
	return &Store{
		db:                db,
		compressThreshold: compressThreshold,
	}
}

func (s *Store) Get(key string) (string, bool) {
	if cache, ok := s.cache.Load(key); ok {
		return cache.(string), true
	}

	stmt := `SELECT value, encoding FROM kv_entry WHERE key = ?`
	var (
		raw      []byte
		encoding string
	)
	if err := s.db.QueryRow(stmt, key).Scan(&raw, &encoding); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn("Unable to read entry", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}

	value, err := decodeValue(raw, encoding)
	if err != nil {
		log.Warn("Unable to decode entry", zap.String("key", key), zap.String("encoding", encoding), zap.Error(err))
		return "", false
	}
	s.cache.Store(key, value)
	return value, true
}

func (s *Store) Set(key, value string) error {
	raw, encoding, err := encodeValue(value, s.compressThreshold)
	if err != nil {
		return errors.Wrapf(err, "failed to encode entry %s", key)
	}

	stmt := `
	INSERT INTO kv_entry (key, value, encoding, updated_ts)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(key) DO UPDATE
	SET
		value=EXCLUDED.value,
		encoding=EXCLUDED.encoding,
		updated_ts=EXCLUDED.updated_ts
	`
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	if _, err := s.db.Exec(stmt, key, raw, encoding, time.Now().Unix()); err != nil {
		return errors.Wrapf(err, "failed to set entry %s", key)
	}
	s.cache.Store(key, value)
	return nil
}

func (s *Store) Remove(key string) error {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	if _, err := s.db.Exec(`DELETE FROM kv_entry WHERE key = ?`, key); err != nil {
		return errors.Wrapf(err, "failed to remove entry %s", key)
	}
	s.cache.Delete(key)
	return nil
}

// Keys lists the stored keys starting with prefix.
func (s *Store) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv_entry WHERE key LIKE ? ESCAPE '\' ORDER BY key`, escapeLike(prefix)+"%")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list keys")
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Size reports the number of entries and their stored (possibly compressed) bytes.
func (s *Store) Size() (int, int64, error) {
	var (
		count int
		bytes sql.NullInt64
	)
	if err := s.db.QueryRow(`SELECT COUNT(*), SUM(LENGTH(value)) FROM kv_entry`).Scan(&count, &bytes); err != nil {
		return 0, 0, errors.Wrap(err, "failed to size store")
	}
	return count, bytes.Int64, nil
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
