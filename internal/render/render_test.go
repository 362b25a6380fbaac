package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainReplacesLineBreaks(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Line1\nLine2":        "Line1<br>Line2",
		"a\r\nb":              "a<br>b",
		"":                    "",
		"one\n\ntwo":          "one<br><br>two",
		"<b>bold</b> & \"q\"": "&lt;b&gt;bold&lt;/b&gt; &amp; &#34;q&#34;",
	}
	for in, want := range cases {
		assert.Equal(t, want, Plain(in), "input %q", in)
	}
}

func TestRendererPlain(t *testing.T) {
	t.Parallel()

	r := New(FormatPlain)
	got, err := r.Render("Line1\nLine2")
	require.NoError(t, err)
	assert.Equal(t, "Line1\nLine2", got.Text)
	assert.Equal(t, "Line1<br>Line2", got.HTML)
}

func TestRendererMarkdown(t *testing.T) {
	t.Parallel()

	r := New(FormatMarkdown)
	got, err := r.Render("# Findings\n\n**Normal** exam\nno distress")
	require.NoError(t, err)
	assert.Contains(t, got.HTML, "<h1>Findings</h1>")
	assert.Contains(t, got.HTML, "<strong>Normal</strong>")
	assert.True(t, strings.Contains(got.HTML, "<br>") || strings.Contains(got.HTML, "<br />"), got.HTML)
}

func TestRendererMarkdownDropsRawHTML(t *testing.T) {
	t.Parallel()

	got, err := New(FormatMarkdown).Render("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, got.HTML, "<script>")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatMarkdown, ParseFormat(" Markdown "))
	assert.Equal(t, FormatPlain, ParseFormat("plain"))
	assert.Equal(t, FormatPlain, ParseFormat("unknown"))
	assert.Equal(t, FormatPlain, ParseFormat(""))
}
