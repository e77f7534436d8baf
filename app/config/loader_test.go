package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "publish.yml"))

	settings, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if len(settings.Thumbnails) != 5 {
		t.Errorf("Expected 5 default thumbnail candidates, got %d", len(settings.Thumbnails))
	}
	if settings.Thumbnails[0] != "thumb.jpg" {
		t.Errorf("Expected 'thumb.jpg' first, got '%s'", settings.Thumbnails[0])
	}
	if settings.DigestLimit != 24 {
		t.Errorf("Expected default digest limit 24, got %d", settings.DigestLimit)
	}
	if settings.ContentLimit != 20000 {
		t.Errorf("Expected default content limit 20000, got %d", settings.ContentLimit)
	}
	if settings.GetDelay() != 3*time.Second {
		t.Errorf("Expected default delay 3s, got %v", settings.GetDelay())
	}
}

func TestLoaderLoadValidSettings(t *testing.T) {
	tempDir := t.TempDir()

	content := `
author: "Jane"
source_url: "https://example.com/blog"
thumbnails:
  - "banner.png"
digest_limit: 54
delay_seconds: 1
disable_comments: true
`
	path := filepath.Join(tempDir, "publish.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := NewLoader(path).Load()
	if err != nil {
		t.Fatal(err)
	}

	if settings.Author != "Jane" {
		t.Errorf("Expected author 'Jane', got '%s'", settings.Author)
	}
	if settings.SourceURL != "https://example.com/blog" {
		t.Errorf("Expected source URL, got '%s'", settings.SourceURL)
	}
	if len(settings.Thumbnails) != 1 || settings.Thumbnails[0] != "banner.png" {
		t.Errorf("Expected thumbnail override, got %v", settings.Thumbnails)
	}
	if settings.DigestLimit != 54 {
		t.Errorf("Expected digest limit 54, got %d", settings.DigestLimit)
	}
	if settings.ContentLimit != 20000 {
		t.Errorf("Expected default content limit to survive partial file, got %d", settings.ContentLimit)
	}
	if settings.GetDelay() != time.Second {
		t.Errorf("Expected delay 1s, got %v", settings.GetDelay())
	}
	if !settings.DisableComments {
		t.Error("Expected comments to be disabled")
	}
}

func TestLoaderInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publish.yml")
	if err := os.WriteFile(path, []byte("thumbnails: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoaderRejectsNegativeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publish.yml")
	if err := os.WriteFile(path, []byte("digest_limit: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for negative digest limit")
	}

	if err := os.WriteFile(path, []byte("delay_seconds: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for negative delay")
	}
}
