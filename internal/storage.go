package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SessionsKey is the single namespaced key holding the JSON-serialized
// session list. There is no versioning scheme; hydration parses defensively.
const SessionsKey = "rantu_chat_sessions"

// KVStore is the durable local key-value storage the app persists into.
type KVStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// SQLiteStore is a KVStore backed by a single-file sqlite database with
// one appStorage table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the key-value database at path
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Key: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Key: path, Op: "open", Err: err}
	}

	createTable := `
	CREATE TABLE IF NOT EXISTS appStorage (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, &StorageError{Key: path, Op: "open", Err: fmt.Errorf("failed to create appStorage table: %w", err)}
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the value stored under key, and whether it was present
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value sql.NullString
	err := s.db.QueryRow("SELECT value FROM appStorage WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Key: key, Op: "get", Err: err}
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// Set writes value under key, replacing any prior value. The write is a
// single statement, so the caller sees either the new value or the old one.
func (s *SQLiteStore) Set(key, value string) error {
	query := "INSERT INTO appStorage (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"
	if _, err := s.db.Exec(query, key, value); err != nil {
		return &StorageError{Key: key, Op: "set", Err: err}
	}
	return nil
}

// Delete removes key from the store
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM appStorage WHERE key = ?", key); err != nil {
		return &StorageError{Key: key, Op: "delete", Err: err}
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory KVStore used in tests and as a best-effort
// fallback when the sqlite file cannot be opened.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// SessionStore persists the full session list as one JSON blob under
// SessionsKey.
type SessionStore struct {
	kv  KVStore
	key string
}

// NewSessionStore creates a session store over the given key-value store
func NewSessionStore(kv KVStore) *SessionStore {
	return &SessionStore{kv: kv, key: SessionsKey}
}

// Load reads and decodes the persisted session list. A missing key returns
// (nil, nil); malformed data returns a HydrateError so the caller can fall
// back to the default session set.
func (ss *SessionStore) Load() ([]*ChatSession, error) {
	raw, ok, err := ss.kv.Get(ss.key)
	if err != nil {
		return nil, &HydrateError{Key: ss.key, Err: err}
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var sessions []*ChatSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		return nil, &HydrateError{Key: ss.key, Err: err}
	}

	for _, s := range sessions {
		if s == nil || s.ID == "" {
			return nil, &HydrateError{Key: ss.key, Err: fmt.Errorf("session entry missing id")}
		}
	}

	return sessions, nil
}

// Save encodes and writes the full session list
func (ss *SessionStore) Save(sessions []*ChatSession) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return &StorageError{Key: ss.key, Op: "set", Err: err}
	}
	return ss.kv.Set(ss.key, string(data))
}

// Clear removes the persisted session list
func (ss *SessionStore) Clear() error {
	return ss.kv.Delete(ss.key)
}
