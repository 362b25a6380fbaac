package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"voicereport/internal/domain"
)

// Format selects how report text becomes HTML.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a configured format name to a Format, defaulting to plain.
func ParseFormat(raw string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatMarkdown:
		return FormatMarkdown
	default:
		return FormatPlain
	}
}

// New returns the renderer for format.
func New(format Format) *Renderer {
	r := &Renderer{format: format}
	if format == FormatMarkdown {
		r.markdown = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		)
	}
	return r
}

// Renderer turns report text into display HTML.
type Renderer struct {
	format   Format
	markdown goldmark.Markdown
}

func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) Render(text string) (domain.RenderedReport, error) {
	if r.markdown == nil {
		return domain.RenderedReport{Text: text, HTML: Plain(text)}, nil
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(normalizeNewlines(text)), &buf); err != nil {
		return domain.RenderedReport{}, fmt.Errorf("convert markdown: %w", err)
	}
	return domain.RenderedReport{Text: text, HTML: strings.TrimSpace(buf.String())}, nil
}

// Plain escapes text and turns each line break into <br>.
func Plain(text string) string {
	return strings.ReplaceAll(html.EscapeString(normalizeNewlines(text)), "\n", "<br>")
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
