package publisher

import (
	"time"

	"github.com/md2wx/md2wx/app/detector"
)

type Status string

const (
	StatusPublished Status = "published"
	// StatusDraftOnly marks a draft that was created but could not be
	// auto-submitted; publishing it manually from the platform console
	// remains as operator work.
	StatusDraftOnly Status = "draft_created_manual_publish_required"
	StatusFailed    Status = "failed"
)

// Outcome is the terminal state of one publish attempt. It carries whatever
// remote identifiers were obtained, even on partial failure, so the ledger
// can reflect the furthest state reached.
type Outcome struct {
	Item        detector.Item
	Status      Status
	ContentHash string
	MediaID     string
	PublishID   string
	PublishedAt time.Time
	Err         error
}
