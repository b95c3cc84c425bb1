package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-outline/internal/assets"
)

func newTestPageBuilder(t *testing.T) *PageBuilder {
	t.Helper()

	tmpl, err := assets.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	renderer, err := NewPageRenderer(tmpl)
	if err != nil {
		t.Fatalf("NewPageRenderer: %v", err)
	}
	return NewPageBuilder(NewGoldmarkConverter(true), renderer, "")
}

func TestPageBuilder_Build(t *testing.T) {
	t.Parallel()

	builder := newTestPageBuilder(t)

	tests := []struct {
		name         string
		source       string
		wantTitle    string
		wantDisabled bool
		wantContains []string
		wantMissing  []string
	}{
		{
			name:      "front matter title",
			source:    "---\ntitle: Guide\n---\n\nIntro.\n\n## Setup\n\nText.\n\n### Install\n\nMore.\n",
			wantTitle: "Guide",
			wantContains: []string{
				`<title>Guide</title>`,
				`<h1>Guide</h1>`,
				`<section id="setup"><header><h2>Setup</h2></header>`,
				`<section id="install"><header><h3>Install</h3></header>`,
				`<nav id="outline"><div id="outline-scrollable"></div></nav>`,
			},
		},
		{
			name:      "title from first h1",
			source:    "# The *Guide*\n\n## Usage\n",
			wantTitle: "The Guide",
			wantContains: []string{
				`<h1>The <em>Guide</em></h1>`,
				`<section id="usage">`,
			},
			wantMissing: []string{`<h1 id=`},
		},
		{
			name:         "fallback title",
			source:       "Just text.\n",
			wantTitle:    "readme",
			wantContains: []string{`<h1>readme</h1>`, `<p>Just text.</p>`},
		},
		{
			name:         "outline disabled",
			source:       "---\nmimo_disableArticleMenu: true\n---\n\n## A\n",
			wantTitle:    "readme",
			wantDisabled: true,
		},
		{
			name:         "language from front matter",
			source:       "---\nlang: fr\ntitle: Guide\n---\n",
			wantTitle:    "Guide",
			wantContains: []string{`<html lang="fr">`},
		},
		{
			name:         "markdown links rewritten",
			source:       "See [setup](setup.md#install).\n",
			wantTitle:    "readme",
			wantContains: []string{`<a href="setup.html#install">setup</a>`},
		},
		{
			name:         "highlight syntax",
			source:       "A ==marked== word.\n",
			wantTitle:    "readme",
			wantContains: []string{`<mark>marked</mark>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := builder.Build(context.Background(), []byte(tt.source), "readme")
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if page.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", page.Title, tt.wantTitle)
			}
			if got := page.Meta.Flag("mimo_disableArticleMenu"); got != tt.wantDisabled {
				t.Errorf("disabled flag = %v, want %v", got, tt.wantDisabled)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(page.HTML, want) {
					t.Errorf("HTML missing %q\n%s", want, page.HTML)
				}
			}
			for _, missing := range tt.wantMissing {
				if strings.Contains(page.HTML, missing) {
					t.Errorf("HTML unexpectedly contains %q", missing)
				}
			}
		})
	}
}

func TestPageBuilder_Build_BadFrontMatter(t *testing.T) {
	t.Parallel()

	builder := newTestPageBuilder(t)
	_, err := builder.Build(context.Background(), []byte("---\ntitle: [unclosed\n---\n"), "x")
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("Build() error = %v, want ErrFrontMatter", err)
	}
}

func TestPageBuilder_Build_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	builder := newTestPageBuilder(t)
	_, err := builder.Build(ctx, []byte("# T\n"), "x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}
