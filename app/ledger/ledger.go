package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Ledger is the persisted record of what has been published and with what
// remote identifiers. It is stored as indented JSON keyed by logical key so
// operators can diff it alongside the content it tracks. The file is loaded
// once at process start; Save replaces it through a temp file + rename so
// an interrupted run never leaves a truncated ledger behind.
type Ledger struct {
	path    string
	entries map[string]Entry
}

// Load reads the ledger file. A missing file is an empty ledger, not an
// error: the first-ever run starts from nothing.
func Load(path string) (*Ledger, error) {
	l := &Ledger{path: path, entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	if err := json.Unmarshal(data, &l.entries); err != nil {
		return nil, fmt.Errorf("failed to parse ledger %s: %w", path, err)
	}

	return l, nil
}

// Get returns the entry for a logical key. Absence is a distinct state from
// a mismatched fingerprint: an absent key has no remote identifiers yet.
func (l *Ledger) Get(key string) (Entry, bool) {
	entry, ok := l.entries[key]
	return entry, ok
}

// Set creates or overwrites the entry for a logical key.
func (l *Ledger) Set(key string, entry Entry) {
	l.entries[key] = entry
}

// Len returns the number of tracked keys.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Snapshot returns a copy of the full mapping.
func (l *Ledger) Snapshot() map[string]Entry {
	snapshot := make(map[string]Entry, len(l.entries))
	for key, entry := range l.entries {
		snapshot[key] = entry
	}
	return snapshot
}

// Save persists the full ledger.
func (l *Ledger) Save() error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	data = append(data, '\n')

	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("failed to replace ledger: %w", err)
	}

	return nil
}
