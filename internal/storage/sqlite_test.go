package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreGetMissing(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	v, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get(missing) = %q, %v; expected \"\", false", v, ok)
	}
}

func TestStoreSetAndGet(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Set("a", "1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("b", "2"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("a", "3"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("a")
	if err != nil || !ok || v != "3" {
		t.Errorf("Get(a) = %q, %v, %v; expected \"3\", true, nil", v, ok, err)
	}
	v, ok, err = store.Get("b")
	if err != nil || !ok || v != "2" {
		t.Errorf("Get(b) = %q, %v, %v; expected \"2\", true, nil", v, ok, err)
	}
}

func TestStoreDelete(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Set("k", "v")
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key should be gone after Delete")
	}
	if err := store.Delete("k"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set(HighScoreKey, "128"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	v, ok, err := store.Get(HighScoreKey)
	if err != nil || !ok || v != "128" {
		t.Errorf("Get after reopen = %q, %v, %v; expected \"128\", true, nil", v, ok, err)
	}
}

func TestStoreGetAfterClose(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, _, err := store.Get("k"); err == nil {
		t.Error("Get on a closed store should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.tensio/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".tensio", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}
