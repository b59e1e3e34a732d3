package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteBasePath(t *testing.T) {
	html := []byte(`<link rel="stylesheet" href="/style.css">` +
		`<script src="/script.js"></script>` +
		`<a href="/vibe.html">vibe</a>` +
		`<a href="/">home</a>`)

	out := string(RewriteBasePath(html, "/prompts"))
	assert.Contains(t, out, `href="/prompts/style.css"`)
	assert.Contains(t, out, `src="/prompts/script.js"`)
	assert.Contains(t, out, `href="/prompts/vibe.html"`)
	assert.Contains(t, out, `href="/prompts/"`)
}

func TestRewriteBasePath_EmptyIsNoop(t *testing.T) {
	html := []byte(`<link href="/style.css">`)
	assert.Equal(t, html, RewriteBasePath(html, ""))
	assert.Equal(t, html, RewriteBasePath(html, "/"))
}

func TestRewriteBasePath_ProtocolRelativeUntouched(t *testing.T) {
	html := []byte(`<script src="//cdn.example.com/lib.js"></script>`)
	out := string(RewriteBasePath(html, "/prompts"))
	assert.Contains(t, out, `src="//cdn.example.com/lib.js"`)
}

func TestRewriteBasePath_FetchCalls(t *testing.T) {
	js := []byte(`fetch("/prompts.csv").then(r => r.text()); fetch('/api/search')`)
	out := string(RewriteBasePath(js, "base"))
	assert.Contains(t, out, `fetch("/base/prompts.csv")`)
	assert.Contains(t, out, `fetch('/base/api/search')`)
}

func TestRewriteBasePath_TrailingSlashNormalized(t *testing.T) {
	html := []byte(`<link href="/style.css">`)
	out := string(RewriteBasePath(html, "/prompts/"))
	assert.Contains(t, out, `href="/prompts/style.css"`)
}
