package outline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetLoader_EmptyPath(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader(\"\") error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil || css == "" {
		t.Errorf("LoadStyle(%q) = %d bytes, %v", DefaultStyle, len(css), err)
	}

	tmpl, err := loader.LoadTemplate(DefaultTemplate)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplate, err)
	}
	if !strings.Contains(tmpl, `id="outline-scrollable"`) {
		t.Error("default template has no scrollable outline region")
	}
}

func TestNewAssetLoader_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetLoader("/nonexistent/path/to/assets")
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestNewAssetLoader_CustomOverride(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	customCSS := "/* custom */ nav { color: red; }"
	writeFile(t, filepath.Join(tmpDir, "styles", DefaultStyle+".css"), customCSS)

	loader, err := NewAssetLoader(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetLoader(%q) error = %v", tmpDir, err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != customCSS {
		t.Errorf("LoadStyle() = %q, want custom override", css)
	}

	// Templates fall back to the embedded set.
	if _, err := loader.LoadTemplate(DefaultTemplate); err != nil {
		t.Errorf("LoadTemplate() fallback error = %v", err)
	}
}

func TestAssetLoader_NotFound(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	if _, err := loader.LoadStyle("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadStyle("../etc/passwd"); !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("LoadStyle(traversal) error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestErrorWrapping_PreservesMessage(t *testing.T) {
	t.Parallel()

	original := errors.New("style \"x\" not found in /custom/styles")
	wrapped := wrapError(ErrStyleNotFound, original)

	if wrapped.Error() != original.Error() {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), original.Error())
	}
	if !errors.Is(wrapped, ErrStyleNotFound) {
		t.Error("wrapped error does not match its sentinel")
	}
}

func TestGenerator_CustomTemplateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.html")
	tmpl := `<html lang="{{.Lang}}"><head><title>{{.Title}}</title></head><body>` +
		`<aside id="outline"><div id="outline-scrollable"></div></aside>` +
		`<article class="main-article"><h1>{{.TitleHTML}}</h1><div class="content">{{.Body}}</div></article>` +
		`</body></html>`
	if err := os.WriteFile(path, []byte(tmpl), 0o600); err != nil {
		t.Fatal(err)
	}

	g := newTestGenerator(t, WithTemplate(path))
	res, err := g.RenderMarkdown(context.Background(), []byte(guideMarkdown), "guide")
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.Contains(string(res.HTML), `<aside id="outline"><a href="#" class="level-1"><span>Guide</span></a>`) {
		t.Errorf("custom template not used:\n%s", res.HTML)
	}
}
