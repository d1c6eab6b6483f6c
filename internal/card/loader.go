package card

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Header column names the word list CSV must carry.
const (
	frontColumn = "French"
	backColumn  = "English"
)

// LoadStore reads a word-pair store from a CSV file. The file must have
// header columns named French and English (in any order). Rows where either
// trimmed value is empty are skipped. An empty result is a configuration
// error: the viewer cannot start without at least one pair.
func LoadStore(path string) (Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Store{}, fmt.Errorf("failed to parse word list %s: %w", path, err)
	}
	if len(records) == 0 {
		return Store{}, fmt.Errorf("word list %s is empty (expected headers %s,%s)", path, frontColumn, backColumn)
	}

	frontIdx, backIdx := -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case frontColumn:
			frontIdx = i
		case backColumn:
			backIdx = i
		}
	}
	if frontIdx < 0 || backIdx < 0 {
		return Store{}, fmt.Errorf("word list %s is missing %s/%s header columns", path, frontColumn, backColumn)
	}

	var pairs []WordPair
	for _, record := range records[1:] {
		if len(record) <= frontIdx || len(record) <= backIdx {
			continue
		}
		front := strings.TrimSpace(record[frontIdx])
		back := strings.TrimSpace(record[backIdx])
		if front == "" || back == "" {
			// Malformed row, skip silently. The load is still valid as
			// long as at least one complete pair remains.
			continue
		}
		pairs = append(pairs, WordPair{Front: front, Back: back})
	}

	if len(pairs) == 0 {
		return Store{}, fmt.Errorf("no usable word pairs in %s (check %s,%s columns)", path, frontColumn, backColumn)
	}

	return NewStore(pairs), nil
}
