package detector

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveWorklist writes the ordered hand-off file consumed by the publish
// step. Kept as indented JSON so the pending batch can be inspected before
// execution begins.
func SaveWorklist(path string, items []Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode worklist: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write worklist: %w", err)
	}

	return nil
}

// LoadWorklist reads the hand-off file. A missing file means a previous
// detect step found nothing to publish.
func LoadWorklist(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read worklist: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse worklist %s: %w", path, err)
	}

	return items, nil
}
