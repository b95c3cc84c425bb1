package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  []string
	}{
		{
			name:         "default template carries outline containers",
			templateName: DefaultTemplateName,
			wantContain: []string{
				`id="outline"`,
				`id="outline-scrollable"`,
				`class="main-article"`,
				`class="content"`,
			},
		},
		{
			name:         "nonexistent template",
			templateName: "nonexistent-template-xyz",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "empty name",
			templateName: "",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "path traversal",
			templateName: "../secret",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "name with dot",
			templateName: "default.html",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("LoadTemplate(%q) missing %q", tt.templateName, want)
				}
			}
		})
	}
}

func TestLoadStyle_Default(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if !strings.Contains(css, ".outline-scrollable-track") {
		t.Error("default style does not target the scroll track")
	}

	if _, err := LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
}

func writeAsset(t *testing.T, base, rel, content string) {
	t.Helper()

	path := filepath.Join(base, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid directory", path: dir},
		{name: "empty path", path: "", wantErr: ErrInvalidBasePath},
		{name: "missing directory", path: filepath.Join(dir, "nope"), wantErr: ErrInvalidBasePath},
		{name: "regular file", path: file, wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("NewFilesystemLoader() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewFilesystemLoader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "templates/docs.html", "<p>custom</p>")
	writeAsset(t, base, "styles/dark.css", "body{}")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}

	got, err := loader.LoadTemplate("docs")
	if err != nil || got != "<p>custom</p>" {
		t.Errorf("LoadTemplate(docs) = %q, %v", got, err)
	}
	got, err = loader.LoadStyle("dark")
	if err != nil || got != "body{}" {
		t.Errorf("LoadStyle(dark) = %q, %v", got, err)
	}
	if _, err := loader.LoadTemplate("other"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(other) error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadStyle("other"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(other) error = %v, want ErrStyleNotFound", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	outside := t.TempDir()
	writeAsset(t, outside, "secret.html", "secret")
	if err := os.MkdirAll(filepath.Join(base, "templates"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(outside, "secret.html"), filepath.Join(base, "templates", "leak.html")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadTemplate("leak"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadTemplate(leak) error = %v, want ErrPathTraversal", err)
	}
}

func TestAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatal(err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true, want false")
		}
		if _, err := r.LoadTemplate(DefaultTemplateName); err != nil {
			t.Errorf("LoadTemplate(default) error = %v", err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeAsset(t, base, "templates/default.html", "override")

		r, err := NewAssetResolver(base)
		if err != nil {
			t.Fatal(err)
		}
		got, err := r.LoadTemplate(DefaultTemplateName)
		if err != nil || got != "override" {
			t.Errorf("LoadTemplate(default) = %q, %v; want override", got, err)
		}
	})

	t.Run("falls back when custom lacks asset", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		got, err := r.LoadStyle(DefaultStyleName)
		if err != nil || got == "" {
			t.Errorf("LoadStyle(outline) = %q, %v; want embedded style", got, err)
		}
	})

	t.Run("validation errors are not masked", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.LoadTemplate("../x"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(../x) error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	found := false
	for _, n := range names {
		if n == DefaultStyleName {
			found = true
		}
	}
	if !found {
		t.Errorf("StyleNames() = %v, want it to include %q", names, DefaultStyleName)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "default", false},
		{"dashes", "site-dark", false},
		{"blank", "  ", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"extension", "outline.css", true},
		{"nul byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr != errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
