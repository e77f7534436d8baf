package config

// Settings represents the optional publish settings file. Every field has a
// working default; the file only needs to exist when the defaults are wrong
// for a given account.
type Settings struct {
	// Publishing metadata
	Author    string `yaml:"author"`
	SourceURL string `yaml:"source_url"`

	// Thumbnail candidate file names, checked in order in each article's
	// directory before falling back to the process-wide default thumbnail.
	Thumbnails []string `yaml:"thumbnails"`

	// Platform field limits
	DigestLimit  int `yaml:"digest_limit"`  // runes
	ContentLimit int `yaml:"content_limit"` // runes

	// Pause after each published item, to stay under the platform rate limit
	DelaySeconds int `yaml:"delay_seconds"`

	// Comment settings forwarded to the draft API
	DisableComments    bool `yaml:"disable_comments"`
	OnlyFansCanComment bool `yaml:"only_fans_can_comment"`
}
