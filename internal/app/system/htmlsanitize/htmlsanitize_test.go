package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		keeps   []string
		removes []string
	}{
		{
			name:  "empty stays empty",
			input: "",
		},
		{
			name:  "basic formatting preserved",
			input: "<p>Grow your <strong>MRR</strong> with <em>content</em></p>",
			keeps: []string{"<p>", "<strong>", "<em>"},
		},
		{
			name:    "script stripped",
			input:   `<p>hi</p><script>alert("x")</script>`,
			keeps:   []string{"<p>hi</p>"},
			removes: []string{"<script>", "alert"},
		},
		{
			name:    "event handlers stripped",
			input:   `<a href="https://example.com" onclick="steal()">link</a>`,
			keeps:   []string{"link"},
			removes: []string{"onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			for _, keep := range tt.keeps {
				if !strings.Contains(got, keep) {
					t.Errorf("Sanitize(%q) = %q, missing %q", tt.input, got, keep)
				}
			}
			for _, rm := range tt.removes {
				if strings.Contains(got, rm) {
					t.Errorf("Sanitize(%q) = %q, should have removed %q", tt.input, got, rm)
				}
			}
		})
	}
}

func TestPrepareForDisplay(t *testing.T) {
	t.Run("plain text is escaped and wrapped", func(t *testing.T) {
		got := string(PrepareForDisplay("line one\nline two & more"))
		if !strings.HasPrefix(got, "<p>") {
			t.Errorf("got %q, want paragraph wrapper", got)
		}
		if !strings.Contains(got, "<br>") {
			t.Errorf("got %q, want newline converted to <br>", got)
		}
		if !strings.Contains(got, "&amp;") {
			t.Errorf("got %q, want ampersand escaped", got)
		}
	})

	t.Run("html passes through sanitizer", func(t *testing.T) {
		got := string(PrepareForDisplay("<p>hello <script>x</script></p>"))
		if strings.Contains(got, "script") {
			t.Errorf("got %q, script should be stripped", got)
		}
	})

	t.Run("empty stays empty", func(t *testing.T) {
		if got := PrepareForDisplay(""); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}
