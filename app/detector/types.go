package detector

// Item is one worklist entry: an article selected for (re)publication.
// The JSON shape is the hand-off file contract between the detect and
// publish steps, which may run as separate processes.
type Item struct {
	Title        string `json:"title"`
	FilePath     string `json:"file_path"`
	Key          string `json:"file_key"`
	ModifiedTime int64  `json:"modified_time"`
	ContentHash  string `json:"content_hash"`
}
