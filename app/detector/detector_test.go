package detector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/md2wx/md2wx/app/article"
	"github.com/md2wx/md2wx/app/ledger"
)

func writeArticle(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func emptyLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	led, err := ledger.Load(filepath.Join(t.TempDir(), "published.json"))
	if err != nil {
		t.Fatal(err)
	}
	return led
}

func TestDetectNewAndChangedArticles(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, root, "a.md", "# A\n")
	writeArticle(t, root, "b.md", "# B\n")

	articles, err := article.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	// a.md already published at its current fingerprint, b.md is new
	led := emptyLedger(t)
	led.Set("a.md", ledger.Entry{ContentHash: articles[0].ContentHash})

	items := Detect(articles, led, false)
	if len(items) != 1 {
		t.Fatalf("Expected worklist [b.md], got %d items", len(items))
	}
	if items[0].Key != "b.md" {
		t.Errorf("Expected key 'b.md', got '%s'", items[0].Key)
	}

	// Force mode selects everything regardless of ledger state
	forced := Detect(articles, led, true)
	if len(forced) != 2 {
		t.Fatalf("Expected force worklist of 2, got %d", len(forced))
	}
	if forced[0].Key != "a.md" || forced[1].Key != "b.md" {
		t.Errorf("Expected [a.md b.md], got [%s %s]", forced[0].Key, forced[1].Key)
	}
}

func TestDetectChangedFingerprint(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, root, "a.md", "# A\n")

	articles, err := article.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	led := emptyLedger(t)
	led.Set("a.md", ledger.Entry{ContentHash: "stale-fingerprint"})

	items := Detect(articles, led, false)
	if len(items) != 1 {
		t.Fatalf("Expected changed article to be selected, got %d items", len(items))
	}
}

func TestDetectIdempotence(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, root, "a.md", "# A\n")
	writeArticle(t, root, "b.md", "# B\n")

	articles, err := article.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	led := emptyLedger(t)

	first := Detect(articles, led, false)
	if len(first) != 2 {
		t.Fatalf("Expected 2 items on first run, got %d", len(first))
	}

	// Simulate a successful run committing every item
	for _, item := range first {
		led.Set(item.Key, ledger.Entry{ContentHash: item.ContentHash})
	}

	second := Detect(articles, led, false)
	if len(second) != 0 {
		t.Errorf("Expected empty worklist on unchanged second run, got %d items", len(second))
	}
}

func TestDetectFirstRunSelectsEverything(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, root, "a.md", "# A\n")
	writeArticle(t, root, "b.md", "# B\n")

	articles, err := article.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	items := Detect(articles, emptyLedger(t), false)
	if len(items) != 2 {
		t.Errorf("Expected all articles on first run, got %d", len(items))
	}
}

func TestCandidatesForceScansRoot(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, root, "a.md", "# A\n")

	gitCalled := false
	git := func(args ...string) (string, error) {
		gitCalled = true
		return "", nil
	}

	articles, err := Candidates(root, true, git)
	if err != nil {
		t.Fatal(err)
	}

	if gitCalled {
		t.Error("Force mode must not consult git")
	}
	if len(articles) != 1 {
		t.Errorf("Expected 1 article, got %d", len(articles))
	}
}

func TestCandidatesIncrementalUsesGitDiff(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, root, "a.md", "# A\n")
	writeArticle(t, root, "b.md", "# B\n")

	git := func(args ...string) (string, error) {
		if args[0] != "diff" {
			t.Errorf("Expected git diff first, got %v", args)
		}
		return filepath.Join(root, "b.md") + "\nREADME.md\n", nil
	}

	articles, err := Candidates(root, false, git)
	if err != nil {
		t.Fatal(err)
	}

	if len(articles) != 1 {
		t.Fatalf("Expected only the changed article, got %d", len(articles))
	}
	if articles[0].Key != "b.md" {
		t.Errorf("Expected key 'b.md', got '%s'", articles[0].Key)
	}
}

func TestCandidatesFirstCommitFallsBackToLsFiles(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, root, "a.md", "# A\n")

	var calls []string
	git := func(args ...string) (string, error) {
		calls = append(calls, args[0])
		if args[0] == "diff" {
			return "", os.ErrNotExist
		}
		return filepath.Join(root, "a.md") + "\n", nil
	}

	articles, err := Candidates(root, false, git)
	if err != nil {
		t.Fatal(err)
	}

	if len(calls) != 2 || calls[1] != "ls-files" {
		t.Errorf("Expected diff then ls-files, got %v", calls)
	}
	if len(articles) != 1 {
		t.Errorf("Expected 1 article from ls-files, got %d", len(articles))
	}
}

func TestCandidatesSkipsDeletedFiles(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, root, "a.md", "# A\n")

	git := func(args ...string) (string, error) {
		return filepath.Join(root, "a.md") + "\n" + filepath.Join(root, "gone.md") + "\n", nil
	}

	articles, err := Candidates(root, false, git)
	if err != nil {
		t.Fatal(err)
	}

	if len(articles) != 1 {
		t.Errorf("Expected deleted file to be skipped, got %d articles", len(articles))
	}
}

func TestWorklistRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "to_publish.json")

	items := []Item{
		{Title: "A", FilePath: "articles/a.md", Key: "a.md", ContentHash: "h1"},
		{Title: "B", FilePath: "articles/b.md", Key: "b.md", ContentHash: "h2"},
	}

	if err := SaveWorklist(path, items); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadWorklist(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(loaded) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(loaded))
	}
	if loaded[0].Key != "a.md" || loaded[1].Key != "b.md" {
		t.Error("Expected worklist order to be preserved")
	}
	if loaded[0].ContentHash != "h1" {
		t.Errorf("Expected content hash 'h1', got '%s'", loaded[0].ContentHash)
	}
}

func TestLoadWorklistMissingFile(t *testing.T) {
	items, err := LoadWorklist(filepath.Join(t.TempDir(), "to_publish.json"))
	if err != nil {
		t.Fatal(err)
	}
	if items != nil {
		t.Errorf("Expected nil worklist for missing file, got %v", items)
	}
}
