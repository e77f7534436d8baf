package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of publish settings
type Loader struct {
	path string
}

// NewLoader creates a new settings loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the publish settings file. A missing file is not an error;
// the defaults are returned instead.
func (l *Loader) Load() (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			setDefaults(settings)
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(settings)

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", l.path, err)
	}

	return settings, nil
}

// setDefaults applies default values to settings
func setDefaults(settings *Settings) {
	if len(settings.Thumbnails) == 0 {
		settings.Thumbnails = []string{"thumb.jpg", "thumb.jpeg", "thumb.png", "cover.jpg", "cover.png"}
	}
	if settings.DigestLimit == 0 {
		settings.DigestLimit = 24 // runes, platform digest field limit
	}
	if settings.ContentLimit == 0 {
		settings.ContentLimit = 20000 // runes, platform draft content limit
	}
	if settings.DelaySeconds == 0 {
		settings.DelaySeconds = 3
	}
}

// validate validates the settings
func validate(settings *Settings) error {
	if settings.DigestLimit < 0 {
		return fmt.Errorf("digest limit must be non-negative")
	}
	if settings.ContentLimit < 0 {
		return fmt.Errorf("content limit must be non-negative")
	}
	if settings.DelaySeconds < 0 {
		return fmt.Errorf("delay must be non-negative")
	}
	return nil
}
