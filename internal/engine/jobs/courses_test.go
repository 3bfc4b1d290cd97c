package jobs

import (
	"net/http"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_match/internal/engine"
)

func TestNewCourseClientDefaultsHTTPClient(t *testing.T) {
	old := *engine.Cfg
	defer func() { *engine.Cfg = old }()

	engine.Cfg.HTTPClient = nil
	if c := NewCourseClient(); c.http == nil {
		t.Fatal("expected a default HTTP client when none is configured")
	}

	custom := &http.Client{}
	engine.Cfg.HTTPClient = custom
	if c := NewCourseClient(); c.http != custom {
		t.Error("expected the configured HTTP client to be used")
	}
}

func TestCuratedCoursesSubstringMatch(t *testing.T) {
	courses := curatedCourses("python developer", 3)
	if len(courses) == 0 {
		t.Fatal("expected curated python courses")
	}
	if courses[0].Title != "Python for Everybody" {
		t.Errorf("first course = %q", courses[0].Title)
	}
	for _, c := range courses {
		if !strings.HasPrefix(c.URL, "https://www.coursera.org/learn/") {
			t.Errorf("curated URL = %q", c.URL)
		}
		if c.Source != "Curated Mapping" {
			t.Errorf("source = %q", c.Source)
		}
	}
}

func TestCuratedCoursesLimit(t *testing.T) {
	courses := curatedCourses("machine learning", 1)
	if len(courses) != 1 {
		t.Errorf("got %d courses, want 1", len(courses))
	}
}

func TestCuratedCoursesUnknownSkill(t *testing.T) {
	if courses := curatedCourses("underwater basket weaving", 3); courses != nil {
		t.Errorf("expected nil for unmapped skill, got %v", courses)
	}
}

func TestFallbackCourses(t *testing.T) {
	courses := fallbackCourses("quantum computing")
	if len(courses) != 1 {
		t.Fatalf("got %d fallback courses, want 1", len(courses))
	}
	c := courses[0]
	if !strings.Contains(c.URL, "coursera.org/search?query=") {
		t.Errorf("fallback URL = %q", c.URL)
	}
	if !strings.Contains(c.Title, "Quantum Computing") {
		t.Errorf("fallback title = %q", c.Title)
	}
	if c.Source != "Coursera Search" {
		t.Errorf("source = %q", c.Source)
	}
}

func TestFallbackCoursesEscapesQuery(t *testing.T) {
	courses := fallbackCourses("ci cd")
	if !strings.Contains(courses[0].URL, "query=ci+cd") {
		t.Errorf("query not escaped: %q", courses[0].URL)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"machine learning", "Machine Learning"},
		{"sql", "Sql"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
