package cfg

type Cfg struct {
	// WeChat Official Account credentials
	AppID     string
	AppSecret string

	// Content configuration
	ArticlesDir   string
	LedgerFile    string
	WorklistFile  string
	DefaultThumb  string
	PublishConfig string

	// Publishing metadata
	Author    string
	SourceURL string

	// Behavior
	Command      string
	ForcePublish bool
	APIBaseURL   string
	Debug        bool
	Version      string
}
