package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// WeChat Official Account credentials
	AppID     string `long:"app-id" env:"WECHAT_APP_ID" description:"WeChat Official Account app id (required for publishing)"`
	AppSecret string `long:"app-secret" env:"WECHAT_APP_SECRET" description:"WeChat Official Account app secret (required for publishing)"`

	// Content configuration
	ArticlesDir   string `long:"articles-dir" env:"ARTICLES_DIR" default:"articles" description:"Content root containing markdown articles"`
	LedgerFile    string `long:"ledger-file" env:"LEDGER_FILE" default:"config/published.json" description:"Path to the publish ledger file"`
	WorklistFile  string `long:"worklist-file" env:"WORKLIST_FILE" default:"to_publish.json" description:"Path to the worklist hand-off file"`
	DefaultThumb  string `long:"default-thumb" env:"DEFAULT_THUMB" default:"config/default_thumb.jpg" description:"Fallback thumbnail image"`
	PublishConfig string `long:"publish-config" env:"PUBLISH_CONFIG" default:"config/publish.yml" description:"Optional publish settings file"`

	// Publishing metadata
	Author    string `long:"author" env:"AUTHOR_NAME" description:"Article author name"`
	SourceURL string `long:"source-url" env:"SOURCE_URL" description:"Original source URL attached to published articles"`

	// Behavior
	ForcePublish bool   `long:"force" env:"INPUT_FORCE_PUBLISH" description:"Republish all articles regardless of ledger state"`
	APIBaseURL   string `long:"api-base-url" env:"API_BASE_URL" default:"https://api.weixin.qq.com" description:"WeChat API base URL"`
	Debug        bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Command string `positional-arg-name:"command" description:"Command to run: detect, publish or run (default: run)"`
	} `positional-args:"yes"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		AppID:         raw.AppID,
		AppSecret:     raw.AppSecret,
		ArticlesDir:   raw.ArticlesDir,
		LedgerFile:    raw.LedgerFile,
		WorklistFile:  raw.WorklistFile,
		DefaultThumb:  raw.DefaultThumb,
		PublishConfig: raw.PublishConfig,
		Author:        raw.Author,
		SourceURL:     raw.SourceURL,
		Command:       cmp.Or(raw.Args.Command, "run"),
		ForcePublish:  raw.ForcePublish,
		APIBaseURL:    raw.APIBaseURL,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
