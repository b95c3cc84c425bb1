package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := WriteFileAtomic(path, []byte("<p>a</p>"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "<p>a</p>" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("replaces file and keeps mode", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not preserved on Windows")
		}

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want new", got)
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := WriteFileAtomic(filepath.Join(dir, "a.html"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "a.html"), []byte("x"), 0o644)
		if err == nil {
			t.Error("WriteFileAtomic() error = nil")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := WriteFileAtomic("", nil, 0o644); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("WriteFileAtomic() error = %v, want ErrEmptyPath", err)
		}
	})
}

func TestFileAndDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		wantFile bool
		wantDir  bool
	}{
		{"file", file, true, false},
		{"directory", dir, false, true},
		{"missing", filepath.Join(dir, "missing"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists() = %v, want %v", got, tt.wantFile)
			}
			if got := DirExists(tt.path); got != tt.wantDir {
				t.Errorf("DirExists() = %v, want %v", got, tt.wantDir)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"docs", false},
		{"my-config", false},
		{"./docs.yaml", true},
		{"../shared/docs.yaml", true},
		{"/abs/docs.yaml", true},
		{`C:\config\docs.yaml`, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, ext, want string
	}{
		{"docs/guide.md", ".html", "docs/guide.html"},
		{"guide", ".html", "guide.html"},
		{"a.b/c.markdown", ".html", "a.b/c.html"},
	}

	for _, tt := range tests {
		if got := ReplaceExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"outline", false},
		{"./outline.css", false},
		{"nav { color: red }", true},
	}

	for _, tt := range tests {
		if got := IsCSS(tt.input); got != tt.want {
			t.Errorf("IsCSS(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
