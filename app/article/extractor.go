package article

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

var titleRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)

type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Digest string `yaml:"digest"`
}

// Extract derives the identity of a markdown document: its ledger key, its
// content fingerprint and its display metadata. The fingerprint always
// covers the raw file bytes, front matter included, so any edit reselects
// the document on the next run.
func Extract(root, path string) (*Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read article %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat article %s: %w", path, err)
	}

	key, err := filepath.Rel(root, path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve key for %s: %w", path, err)
	}

	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		// Malformed front matter is not fatal; the document is published as-is.
		meta = frontMatter{}
		body = data
	}

	hash := sha256.Sum256(data)

	return &Article{
		Path:        path,
		Key:         filepath.ToSlash(key),
		Dir:         filepath.Dir(path),
		Title:       resolveTitle(meta.Title, body, path),
		Author:      meta.Author,
		Digest:      meta.Digest,
		Body:        body,
		ModifiedAt:  info.ModTime(),
		ContentHash: hex.EncodeToString(hash[:]),
	}, nil
}

func resolveTitle(fmTitle string, body []byte, path string) string {
	if fmTitle != "" {
		return fmTitle
	}

	if match := titleRe.FindSubmatch(body); match != nil {
		return strings.TrimSpace(string(match[1]))
	}

	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Scan extracts every markdown document under the content root, in lexical
// walk order so repeated runs see the same candidate sequence.
func Scan(root string) ([]*Article, error) {
	var articles []*Article

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		a, err := Extract(root, path)
		if err != nil {
			return err
		}
		articles = append(articles, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan content root %s: %w", root, err)
	}

	return articles, nil
}
