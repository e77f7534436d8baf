package detector

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/md2wx/md2wx/app/article"
)

// GitRunner executes a git subcommand and returns its stdout. Injectable so
// tests can run without a repository.
type GitRunner func(args ...string) (string, error)

// RunGit is the production GitRunner.
func RunGit(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// Candidates builds the candidate set for one run. Incremental mode asks
// git for the files touched by the most recent commit; with no baseline to
// diff against (the first-ever commit) it degrades to all tracked files,
// and without a usable git repository to a full scan of the content root.
// Force mode always scans everything.
func Candidates(root string, force bool, git GitRunner) ([]*article.Article, error) {
	if force {
		return article.Scan(root)
	}

	out, err := git("diff", "--name-only", "HEAD~1", "HEAD")
	if err != nil {
		out, err = git("ls-files")
	}
	if err != nil {
		slog.Warn("Git unavailable, scanning content root instead", "error", err)
		return article.Scan(root)
	}

	var articles []*article.Article
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		path := strings.TrimSpace(line)
		if path == "" || filepath.Ext(path) != ".md" {
			continue
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue // outside the content root
		}

		if _, err := os.Stat(path); err != nil {
			continue // deleted in the last commit; nothing to publish
		}

		a, err := article.Extract(root, path)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, nil
}
