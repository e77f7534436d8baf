package detector

import (
	"github.com/md2wx/md2wx/app/article"
	"github.com/md2wx/md2wx/app/ledger"
)

// Detect computes the publish worklist: articles whose key is absent from
// the ledger, articles whose fingerprint differs from the last published
// one and, in force mode, every candidate. Candidate order is preserved so
// the same inputs always produce the same worklist.
func Detect(articles []*article.Article, led *ledger.Ledger, force bool) []Item {
	var items []Item

	for _, a := range articles {
		if !force {
			if entry, ok := led.Get(a.Key); ok && entry.ContentHash == a.ContentHash {
				continue
			}
		}

		items = append(items, Item{
			Title:        a.Title,
			FilePath:     a.Path,
			Key:          a.Key,
			ModifiedTime: a.ModifiedAt.Unix(),
			ContentHash:  a.ContentHash,
		})
	}

	return items
}
