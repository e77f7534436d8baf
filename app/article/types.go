package article

import "time"

// Article is a single markdown document under the content root.
type Article struct {
	Path        string // path as given on the command line or by git
	Key         string // path relative to the content root; the ledger's primary key
	Dir         string // containing directory, used to resolve relative assets
	Title       string
	Author      string // optional front matter override
	Digest      string // optional front matter override
	Body        []byte // content with front matter stripped
	ModifiedAt  time.Time
	ContentHash string // sha256 over the raw file bytes, hex encoded
}
