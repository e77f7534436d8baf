package ledger

// Entry records the last published version of an article. Entries are
// overwritten on republish, never deleted.
type Entry struct {
	Title         string `json:"title"`
	ContentHash   string `json:"content_hash"`
	PublishedTime string `json:"published_time"`
	MediaID       string `json:"media_id"`
	PublishID     string `json:"publish_id,omitempty"`
}
