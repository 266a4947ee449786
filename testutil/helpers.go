package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rantu/rantu-market/internal"
)

// CreateTempDataDir points RANTU_DATA_DIR at a fresh temp directory so
// tests never touch the user's real storefront data.
func CreateTempDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("RANTU_DATA_DIR", dir)
	return dir
}

// SeedChatBlob writes a raw session blob into the storage database inside
// the given data directory.
func SeedChatBlob(t *testing.T, dir, blob string) {
	t.Helper()

	store, err := internal.OpenSQLiteStore(filepath.Join(dir, "rantu.db"))
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Set(internal.SessionsKey, blob); err != nil {
		t.Fatalf("Failed to seed chat blob: %v", err)
	}
}

// JSONMarshal marshals a value to JSON for testing
func JSONMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal JSON: %v", err)
	}
	return data
}

// JSONUnmarshal unmarshals JSON for testing
func JSONUnmarshal(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
}
