package leaderboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	f, err := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.json"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return f
}

func TestFileStoreMissingFile(t *testing.T) {
	f := newTestStore(t)

	if b := f.Load(); len(b) != 0 {
		t.Errorf("Load of a missing file = %+v, expected an empty board", b)
	}
	ok, err := f.IsHighScore("easy", 0)
	if err != nil {
		t.Fatalf("IsHighScore failed: %v", err)
	}
	if !ok {
		t.Error("Empty board should admit any score")
	}
	top, err := f.Top("easy", 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Top of a missing file = %+v, expected empty", top)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	f := newTestStore(t)
	if err := os.WriteFile(f.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if b := f.Load(); len(b) != 0 {
		t.Errorf("Load of a corrupt file = %+v, expected an empty board", b)
	}

	// Recording over a corrupt file starts a fresh board.
	if err := f.Record("easy", "AAA", 40); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	top, err := f.Top("easy", 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 1 || top[0] != (Entry{Name: "AAA", Score: 40}) {
		t.Errorf("Top = %+v, expected the one recorded entry", top)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	f := newTestStore(t)
	if err := f.Record("medium", "ONE", 30); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := f.Record("medium", "TWO", 70); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := f.Record("hard", "HEX", 110); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// A second store on the same path sees the persisted tables.
	reopened, err := NewFileStore(f.Path())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	top, err := reopened.Top("medium", 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 2 || top[0].Name != "TWO" || top[1].Name != "ONE" {
		t.Errorf("Top(medium) = %+v, expected TWO then ONE", top)
	}
	hard, err := reopened.Top("hard", 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(hard) != 1 || hard[0].Score != 110 {
		t.Errorf("Top(hard) = %+v, expected the single entry", hard)
	}
}

func TestFileStoreJSONShape(t *testing.T) {
	f := newTestStore(t)
	if err := f.Record("easy", "AAA", 120); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	data, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	var raw map[string][]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("File is not difficulty-keyed JSON: %v", err)
	}
	entries, ok := raw["easy"]
	if !ok || len(entries) != 1 {
		t.Fatalf("File contents = %v, expected one easy entry", raw)
	}
	if entries[0]["name"] != "AAA" || entries[0]["score"] != float64(120) {
		t.Errorf("Entry = %v, expected lowercase name and score keys", entries[0])
	}
}

func TestFileStoreCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "board.json")
	f, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := f.Record("insane", "ZZZ", 10); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Board file not created: %v", err)
	}
}

func TestFileStoreKeepsTableDepth(t *testing.T) {
	f := newTestStore(t)
	for i := 1; i <= 12; i++ {
		if err := f.Record("easy", "P", i*5); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	top, err := f.Top("easy", 20)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Table holds %d entries, expected 10", len(top))
	}
	if top[0].Score != 60 || top[9].Score != 15 {
		t.Errorf("Table spans %d..%d, expected 60..15", top[0].Score, top[9].Score)
	}
}
