package internal

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveDataPaths_Override(t *testing.T) {
	dir := t.TempDir()

	paths, err := ResolveDataPaths(dir)
	if err != nil {
		t.Fatalf("ResolveDataPaths() error: %v", err)
	}
	if paths.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", paths.DataDir, dir)
	}
	if paths.DatabasePath != filepath.Join(dir, "rantu.db") {
		t.Errorf("DatabasePath = %q", paths.DatabasePath)
	}
}

func TestResolveDataPaths_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RANTU_DATA_DIR", dir)

	paths, err := ResolveDataPaths("")
	if err != nil {
		t.Fatalf("ResolveDataPaths() error: %v", err)
	}
	if paths.DataDir != dir {
		t.Errorf("DataDir = %q, want env override %q", paths.DataDir, dir)
	}
}

func TestResolveDataPaths_OverrideBeatsEnv(t *testing.T) {
	flagDir := t.TempDir()
	t.Setenv("RANTU_DATA_DIR", t.TempDir())

	paths, err := ResolveDataPaths(flagDir)
	if err != nil {
		t.Fatalf("ResolveDataPaths() error: %v", err)
	}
	if paths.DataDir != flagDir {
		t.Errorf("DataDir = %q, want flag override %q", paths.DataDir, flagDir)
	}
}

func TestResolveDataPaths_Default(t *testing.T) {
	t.Setenv("RANTU_DATA_DIR", "")

	paths, err := ResolveDataPaths("")
	if err != nil {
		t.Fatalf("ResolveDataPaths() error: %v", err)
	}
	if !strings.Contains(paths.DataDir, "rantu") {
		t.Errorf("default DataDir = %q, want a rantu directory", paths.DataDir)
	}
}

func TestEnsureDataDir(t *testing.T) {
	paths := DataPaths{DataDir: filepath.Join(t.TempDir(), "nested", "rantu")}

	if err := paths.EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() error: %v", err)
	}
	if err := paths.EnsureDataDir(); err != nil {
		t.Errorf("EnsureDataDir() should be idempotent: %v", err)
	}
}
