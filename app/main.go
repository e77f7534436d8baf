package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/md2wx/md2wx/app/cfg"
	"github.com/md2wx/md2wx/app/config"
	"github.com/md2wx/md2wx/app/detector"
	"github.com/md2wx/md2wx/app/ledger"
	"github.com/md2wx/md2wx/app/publisher"
	"github.com/md2wx/md2wx/app/wechat"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting md2wx", "version", appCfg.Version, "command", appCfg.Command)

	if err := run(appCfg); err != nil {
		slog.Error("Run failed", "command", appCfg.Command, "error", err)
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg) error {
	switch appCfg.Command {
	case "detect":
		_, err := detect(appCfg)
		return err
	case "publish":
		items, err := detector.LoadWorklist(appCfg.WorklistFile)
		if err != nil {
			return err
		}
		return publish(appCfg, items)
	case "run":
		items, err := detect(appCfg)
		if err != nil {
			return err
		}
		return publish(appCfg, items)
	default:
		return fmt.Errorf("unknown command: %s", appCfg.Command)
	}
}

// detect builds the worklist and writes the hand-off artifact for the
// publish step. It never talks to the platform.
func detect(appCfg *cfg.Cfg) ([]detector.Item, error) {
	led, err := ledger.Load(appCfg.LedgerFile)
	if err != nil {
		return nil, err
	}

	candidates, err := detector.Candidates(appCfg.ArticlesDir, appCfg.ForcePublish, detector.RunGit)
	if err != nil {
		return nil, err
	}

	items := detector.Detect(candidates, led, appCfg.ForcePublish)

	if err := reportChanges(len(items) > 0); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		slog.Info("No articles need publishing", "candidates", len(candidates), "tracked", led.Len())
		return nil, nil
	}

	slog.Info("Articles selected for publishing", "count", len(items))
	for _, item := range items {
		slog.Info("Selected", "title", item.Title, "path", item.FilePath)
	}

	if err := detector.SaveWorklist(appCfg.WorklistFile, items); err != nil {
		return nil, err
	}

	return items, nil
}

// reportChanges exposes the has_changes signal so an orchestrator can skip
// the publish step when nothing changed.
func reportChanges(hasChanges bool) error {
	slog.Info("Change detection finished", "has_changes", hasChanges)

	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open GITHUB_OUTPUT: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "has_changes=%t\n", hasChanges); err != nil {
		return fmt.Errorf("failed to write GITHUB_OUTPUT: %w", err)
	}

	return nil
}

func publish(appCfg *cfg.Cfg, items []detector.Item) error {
	if len(items) == 0 {
		slog.Info("Nothing to publish")
		return nil
	}

	if appCfg.AppID == "" || appCfg.AppSecret == "" {
		return fmt.Errorf("WECHAT_APP_ID and WECHAT_APP_SECRET must be set")
	}

	settings, err := config.NewLoader(appCfg.PublishConfig).Load()
	if err != nil {
		return err
	}
	settings.Author = cmp.Or(appCfg.Author, settings.Author)
	settings.SourceURL = cmp.Or(appCfg.SourceURL, settings.SourceURL)

	led, err := ledger.Load(appCfg.LedgerFile)
	if err != nil {
		return err
	}

	client := wechat.NewClient(appCfg.AppID, appCfg.AppSecret, appCfg.APIBaseURL, nil)
	pub := publisher.NewPublisher(client, led, settings, appCfg.ArticlesDir, appCfg.DefaultThumb)

	outcomes, err := pub.Run(context.Background(), items)
	if err != nil {
		return err
	}

	var published, drafts, failed int
	for _, outcome := range outcomes {
		switch outcome.Status {
		case publisher.StatusPublished:
			published++
		case publisher.StatusDraftOnly:
			drafts++
		case publisher.StatusFailed:
			failed++
		}
	}

	slog.Info("Publish run finished",
		"total", len(items),
		"published", published,
		"drafts_pending_manual", drafts,
		"failed", failed)

	return nil
}
