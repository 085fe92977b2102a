package web

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Renderer loads named template files from Dir and performs literal
// placeholder substitution. There is no template language: only the exact
// substring "{{ key }}" (single spaces) is replaced.
type Renderer struct {
	Dir string
}

// NewRenderer returns a Renderer rooted at dir, defaulting to ./templates.
func NewRenderer(dir string) *Renderer {
	if dir == "" {
		dir = "./templates"
	}
	return &Renderer{Dir: dir}
}

// Render reads the named template and substitutes every "{{ key }}" for each
// context entry with the string form of its value. A missing template is a
// recoverable condition: Render returns a fallback fragment naming it rather
// than an error. Unmatched placeholders stay verbatim; keys apply in sorted
// order so the output is deterministic, and no key is substituted twice.
func (t *Renderer) Render(name string, ctx map[string]any) string {
	b, err := os.ReadFile(filepath.Join(t.Dir, name))
	if err != nil {
		return fmt.Sprintf("<h1>Template Error</h1><p>Template '%s' not found</p>", name)
	}
	out := string(b)

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = strings.ReplaceAll(out, "{{ "+k+" }}", fmt.Sprint(ctx[k]))
	}
	return out
}
