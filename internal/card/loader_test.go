package card

import (
	"path/filepath"
	"testing"

	"codeberg.org/snonux/milo/internal/testutil"
)

func TestLoadStore(t *testing.T) {
	path := testutil.CreateTestCSV(t,
		"French,English",
		"chat,cat",
		"chien,dog",
	)

	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}

	if store.Len() != 2 {
		t.Errorf("Expected 2 pairs, got %d", store.Len())
	}

	if store.At(0) != (WordPair{Front: "chat", Back: "cat"}) {
		t.Errorf("Unexpected first pair: %+v", store.At(0))
	}
}

func TestLoadStoreReorderedColumns(t *testing.T) {
	// Header columns may come in any order
	path := testutil.CreateTestCSV(t,
		"English,French",
		"cat,chat",
	)

	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}

	if store.At(0).Front != "chat" {
		t.Errorf("Expected front 'chat', got '%s'", store.At(0).Front)
	}
}

func TestLoadStoreSkipsMalformedRows(t *testing.T) {
	path := testutil.CreateTestCSV(t,
		"French,English",
		"chat,cat",
		",dog",
		"poisson,",
		"   ,  ",
		"chien,dog",
	)

	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}

	// Rows missing either trimmed value are dropped silently
	if store.Len() != 2 {
		t.Errorf("Expected 2 pairs after filtering, got %d", store.Len())
	}
}

func TestLoadStoreTrimsValues(t *testing.T) {
	path := testutil.CreateTestCSV(t,
		"French,English",
		"  chat  ,  cat  ",
	)

	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}

	if store.At(0) != (WordPair{Front: "chat", Back: "cat"}) {
		t.Errorf("Expected trimmed pair, got %+v", store.At(0))
	}
}

func TestLoadStoreEmptyIsFatal(t *testing.T) {
	path := testutil.CreateTestCSV(t,
		"French,English",
		",",
	)

	if _, err := LoadStore(path); err == nil {
		t.Error("Expected error for word list with no usable pairs")
	}
}

func TestLoadStoreMissingHeaders(t *testing.T) {
	path := testutil.CreateTestCSV(t,
		"Word,Translation",
		"chat,cat",
	)

	if _, err := LoadStore(path); err == nil {
		t.Error("Expected error for missing French/English headers")
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	if _, err := LoadStore(path); err == nil {
		t.Error("Expected error for missing word list file")
	}
}
