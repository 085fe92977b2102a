package web

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
}

func TestRender_Substitution(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "welcome.html", "Welcome, {{ user }}!")

	r := NewRenderer(dir)
	got := r.Render("welcome.html", map[string]any{"user": "Alice"})
	if got != "Welcome, Alice!" {
		t.Fatalf("expected substituted output, got %q", got)
	}
}

func TestRender_NoPlaceholdersIsIdentity(t *testing.T) {
	dir := t.TempDir()
	content := "<p>nothing to replace here</p>"
	writeTemplate(t, dir, "plain.html", content)

	r := NewRenderer(dir)
	if got := r.Render("plain.html", map[string]any{"user": "Alice"}); got != content {
		t.Fatalf("expected identity output, got %q", got)
	}
}

func TestRender_UnmatchedPlaceholderLeftVerbatim(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "t.html", "Hello {{ user }}, id {{ id }}")

	r := NewRenderer(dir)
	got := r.Render("t.html", map[string]any{"user": "Bob"})
	if got != "Hello Bob, id {{ id }}" {
		t.Fatalf("expected unmatched placeholder kept, got %q", got)
	}
}

func TestRender_StrictSpacingOnly(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "t.html", "{{user}} {{  user  }} {{ user }}")

	r := NewRenderer(dir)
	got := r.Render("t.html", map[string]any{"user": "Bob"})
	if got != "{{user}} {{  user  }} Bob" {
		t.Fatalf("expected only single-space form substituted, got %q", got)
	}
}

func TestRender_NonStringValues(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "t.html", "count={{ count }}")

	r := NewRenderer(dir)
	if got := r.Render("t.html", map[string]any{"count": 42}); got != "count=42" {
		t.Fatalf("expected stringified value, got %q", got)
	}
}

func TestRender_MissingTemplateFallback(t *testing.T) {
	r := NewRenderer(t.TempDir())
	got := r.Render("nope.html", nil)
	if !strings.Contains(got, "Template Error") || !strings.Contains(got, "nope.html") {
		t.Fatalf("expected fallback naming the template, got %q", got)
	}
}
