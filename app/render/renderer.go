package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// ImageUploader uploads a local image to the platform's media store and
// returns its remote URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, path string) (string, error)
}

var (
	strongRe  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	quoteRe   = regexp.MustCompile(`(?m)^> (.*)$`)
	imageRe   = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	dividerRe = regexp.MustCompile(`\n---\n`)
)

// Renderer converts markdown bodies into the platform's styled HTML.
type Renderer struct {
	engine   goldmark.Markdown
	uploader ImageUploader
}

func NewRenderer(uploader ImageUploader) *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Table),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		uploader: uploader,
	}
}

// Run renders one article body. Relative image references are resolved
// against dir, uploaded through the platform's media store and replaced
// with captioned containers. A failed upload degrades that single image to
// a placeholder paragraph; it never fails the whole article.
func (r *Renderer) Run(ctx context.Context, body []byte, dir string) (string, error) {
	content := string(body)

	content = strongRe.ReplaceAllString(content, "<strong>$1</strong>")
	content = quoteRe.ReplaceAllString(content, "<blockquote>$1</blockquote>")
	content = r.replaceImages(ctx, content, dir)
	content = dividerRe.ReplaceAllString(content, `<div class="section-divider"><span>&#9670; &#9670; &#9670;</span></div>`)

	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	rendered := fmt.Sprintf(`<div class="content">%s</div>`, buf.String())
	rendered = strings.ReplaceAll(rendered, "<table>", `<div class="table-container"><table>`)
	rendered = strings.ReplaceAll(rendered, "</table>", `</table></div>`)

	return styles + rendered, nil
}

func (r *Renderer) replaceImages(ctx context.Context, content, dir string) string {
	return imageRe.ReplaceAllStringFunc(content, func(match string) string {
		groups := imageRe.FindStringSubmatch(match)
		alt, src := groups[1], groups[2]

		if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			return imageContainer(src, alt)
		}

		path := filepath.Join(dir, src)
		if _, err := os.Stat(path); err != nil {
			// Dangling reference; leave the src as-is for the platform editor.
			return imageContainer(src, alt)
		}

		remote, err := r.uploader.UploadImage(ctx, path)
		if err != nil {
			slog.Warn("Image upload failed", "path", path, "error", err)
			return fmt.Sprintf("<p>[image upload failed: %s]</p>", html.EscapeString(alt))
		}

		return imageContainer(remote, alt)
	})
}

func imageContainer(src, alt string) string {
	escaped := html.EscapeString(alt)
	return fmt.Sprintf(`<div class="img-container"><img src="%s" alt="%s"><div class="img-caption">%s</div></div>`,
		src, escaped, escaped)
}
