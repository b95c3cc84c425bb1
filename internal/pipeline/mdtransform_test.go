package pipeline

import "testing"

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf normalized", "a\r\nb\rc", "a\nb\nc"},
		{"blank lines collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"highlight", "x ==y== z", "x " + markStart + "y" + markEnd + " z"},
		{"two highlights", "==a== ==b==", markStart + "a" + markEnd + " " + markStart + "b" + markEnd},
		{"lone markers kept", "a == b", "a == b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PreprocessMarkdown(tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFinishHighlights(t *testing.T) {
	t.Parallel()

	got := FinishHighlights("<p>" + markStart + "hot" + markEnd + "</p>")
	if want := "<p><mark>hot</mark></p>"; got != want {
		t.Errorf("FinishHighlights() = %q, want %q", got, want)
	}
}
