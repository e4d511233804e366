// Package markdown renders embedded markdown content pages to safe HTML.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"sync"

	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/hrassist/pkg/sanitizer"
)

// Renderer converts markdown files from a filesystem into sanitized HTML.
// Rendered pages are cached; content files are embedded and immutable.
type Renderer struct {
	fs    fs.FS
	md    goldmark.Markdown
	cache map[string]template.HTML
	mu    sync.RWMutex
}

// NewRenderer creates a renderer over the given filesystem.
func NewRenderer(filesystem fs.FS) *Renderer {
	return &Renderer{
		fs:    filesystem,
		md:    goldmark.New(),
		cache: make(map[string]template.HTML),
	}
}

// Render converts the named markdown file to sanitized HTML.
func (r *Renderer) Render(name string) (template.HTML, error) {
	r.mu.RLock()
	cached, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	raw, err := fs.ReadFile(r.fs, name)
	if err != nil {
		return "", fmt.Errorf("markdown: read %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := r.md.Convert(raw, &buf); err != nil {
		return "", fmt.Errorf("markdown: convert %s: %w", name, err)
	}

	out := template.HTML(sanitizer.SanitizePage(buf.String())) //nolint:gosec // sanitized above

	r.mu.Lock()
	r.cache[name] = out
	r.mu.Unlock()

	return out, nil
}
