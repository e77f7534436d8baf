package publisher

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/md2wx/md2wx/app/article"
	"github.com/md2wx/md2wx/app/config"
	"github.com/md2wx/md2wx/app/detector"
	"github.com/md2wx/md2wx/app/ledger"
	"github.com/md2wx/md2wx/app/render"
	"github.com/md2wx/md2wx/app/wechat"
)

// PlatformClient is the remote publishing surface the executor drives.
type PlatformClient interface {
	UploadImage(ctx context.Context, path string) (string, error)
	UploadThumb(ctx context.Context, path string) (string, error)
	AddDraft(ctx context.Context, draft wechat.Draft) (string, error)
	PublishDraft(ctx context.Context, mediaID string) (string, error)
}

// Publisher drives the per-item publish sequence: render, thumbnail
// resolution, draft creation, publish submission. Items are processed
// sequentially with a fixed pause between them so the platform's rate
// limit is never approached.
type Publisher struct {
	client   PlatformClient
	renderer *render.Renderer
	ledger   *ledger.Ledger
	settings *config.Settings

	root         string
	defaultThumb string
	delay        time.Duration
	sleep        func(time.Duration)
}

func NewPublisher(client PlatformClient, led *ledger.Ledger, settings *config.Settings, root, defaultThumb string) *Publisher {
	return &Publisher{
		client:       client,
		renderer:     render.NewRenderer(client),
		ledger:       led,
		settings:     settings,
		root:         root,
		defaultThumb: defaultThumb,
		delay:        settings.GetDelay(),
		sleep:        time.Sleep,
	}
}

// Run publishes the worklist. Remote failures are isolated per item: a
// failed article is logged, left out of the ledger so the next run
// reselects it, and the rest of the batch continues. The ledger is updated
// and saved after every attempted item, so an interrupted run keeps
// everything it finished. Only local I/O errors abort the batch.
func (p *Publisher) Run(ctx context.Context, items []detector.Item) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(items))

	for i, item := range items {
		slog.Info("Publishing article", "title", item.Title, "path", item.FilePath)

		outcome, err := p.publishOne(ctx, item)
		if err != nil {
			// No safe partial mode without readable content and ledger.
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)

		switch outcome.Status {
		case StatusPublished:
			slog.Info("Article published", "title", item.Title, "key", item.Key, "publish_id", outcome.PublishID, "media_id", outcome.MediaID)
		case StatusDraftOnly:
			slog.Warn("Draft created, auto-publish denied", "title", item.Title, "key", item.Key, "media_id", outcome.MediaID, "error", outcome.Err)
		case StatusFailed:
			slog.Error("Publish failed", "title", item.Title, "key", item.Key, "error", outcome.Err)
		}

		if outcome.Status != StatusFailed {
			p.ledger.Set(item.Key, ledger.Entry{
				Title:         item.Title,
				ContentHash:   outcome.ContentHash,
				PublishedTime: outcome.PublishedAt.Format(time.RFC3339),
				MediaID:       outcome.MediaID,
				PublishID:     outcome.PublishID,
			})
			if err := p.ledger.Save(); err != nil {
				return outcomes, fmt.Errorf("failed to save ledger: %w", err)
			}
		}

		// Throughput governor against the platform rate limit, not a retry
		// backoff; applied regardless of the item's outcome.
		if i < len(items)-1 && p.delay > 0 {
			p.sleep(p.delay)
		}
	}

	return outcomes, nil
}

// publishOne runs the publish state machine for one item. The returned
// error is reserved for local I/O failures; every remote failure is folded
// into the outcome.
func (p *Publisher) publishOne(ctx context.Context, item detector.Item) (Outcome, error) {
	outcome := Outcome{Item: item, Status: StatusFailed}

	a, err := article.Extract(p.root, item.FilePath)
	if err != nil {
		return outcome, fmt.Errorf("failed to load article %s: %w", item.FilePath, err)
	}
	outcome.ContentHash = a.ContentHash

	content, err := p.renderer.Run(ctx, a.Body, a.Dir)
	if err != nil {
		outcome.Err = err
		return outcome, nil
	}

	thumbID, err := p.resolveThumbnail(ctx, a.Dir)
	if err != nil {
		outcome.Err = fmt.Errorf("no usable thumbnail: %w", err)
		return outcome, nil
	}

	if length := len([]rune(content)); length > p.settings.ContentLimit {
		// Silent truncation is the documented policy; the batch keeps moving.
		slog.Warn("Content exceeds platform limit, truncating", "key", item.Key, "length", length, "limit", p.settings.ContentLimit)
		content = render.Truncate(content, p.settings.ContentLimit)
	}

	draft := wechat.Draft{
		Title:              a.Title,
		Author:             cmp.Or(a.Author, p.settings.Author),
		Digest:             render.Digest(cmp.Or(a.Digest, string(a.Body)), p.settings.DigestLimit),
		Content:            content,
		ContentSourceURL:   p.settings.SourceURL,
		ThumbMediaID:       thumbID,
		NeedOpenComment:    boolToInt(!p.settings.DisableComments),
		OnlyFansCanComment: boolToInt(p.settings.OnlyFansCanComment),
	}

	mediaID, err := p.client.AddDraft(ctx, draft)
	if err != nil {
		outcome.Err = err
		return outcome, nil
	}

	outcome.MediaID = mediaID
	outcome.PublishedAt = time.Now()

	publishID, err := p.client.PublishDraft(ctx, mediaID)
	if err != nil {
		// The draft exists; only auto-submission was refused. Recorded as a
		// partial success so an operator knows manual action remains.
		outcome.Status = StatusDraftOnly
		outcome.Err = err
		return outcome, nil
	}

	outcome.Status = StatusPublished
	outcome.PublishID = publishID
	return outcome, nil
}

// resolveThumbnail walks the conventional thumbnail names in the article's
// directory, then falls back to the process-wide default. The draft API
// treats the thumbnail as required, so exhausting every option is a
// terminal failure for the item.
func (p *Publisher) resolveThumbnail(ctx context.Context, dir string) (string, error) {
	for _, name := range p.settings.Thumbnails {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		mediaID, err := p.client.UploadThumb(ctx, path)
		if err != nil {
			slog.Warn("Thumbnail upload failed", "path", path, "error", err)
			continue
		}
		return mediaID, nil
	}

	if p.defaultThumb != "" {
		if _, err := os.Stat(p.defaultThumb); err == nil {
			mediaID, err := p.client.UploadThumb(ctx, p.defaultThumb)
			if err != nil {
				return "", fmt.Errorf("default thumbnail upload failed: %w", err)
			}
			return mediaID, nil
		}
	}

	return "", fmt.Errorf("no thumbnail in %s and no default thumbnail at %s", dir, p.defaultThumb)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
