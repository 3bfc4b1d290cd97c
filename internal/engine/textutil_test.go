package engine

import (
	"strings"
	"testing"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "just text", "just text"},
		{"tags stripped", "<p>We need <b>Python</b> developers.</p>", "We need Python developers."},
		{"script dropped", "<p>hi</p><script>alert(1)</script>", "hi"},
		{"style dropped", "<style>p{color:red}</style>ok", "ok"},
		{"entity decoded", "R&amp;D engineer", "R&D engineer"},
		{"whitespace collapsed", "a\n\n  b\t c", "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.in); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	got := HTMLToMarkdown("<p>We need <strong>Python</strong> developers.</p>")
	if !strings.Contains(got, "**Python**") {
		t.Errorf("HTMLToMarkdown = %q, want bold markdown", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("hi", 10); got != "hi" {
		t.Errorf("short input changed: %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("привет мир", 6, ""); got != "привет" {
		t.Errorf("TruncateRunes = %q", got)
	}
	if got := TruncateRunes("abcdef", 3, "..."); got != "abc..." {
		t.Errorf("TruncateRunes with suffix = %q", got)
	}
}
