package jobs

import (
	"strings"
	"testing"
)

const sampleAdzunaJSON = `{
	"results": [
		{
			"title": "Senior Python Developer",
			"description": "<p>We need <b>Python</b> and SQL experience.</p>",
			"created": "2026-08-20T12:00:00Z",
			"company": {"display_name": "Acme Corp"},
			"location": {"display_name": "Austin, TX"}
		},
		{
			"title": "Data Analyst",
			"description": "Tableau dashboards and reporting.",
			"created": "not-a-date",
			"company": {},
			"location": {}
		}
	]
}`

func TestParseAdzunaResponse(t *testing.T) {
	jobs, err := parseAdzunaResponse([]byte(sampleAdzunaJSON))
	if err != nil {
		t.Fatalf("parseAdzunaResponse error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	// First job: nested company/location objects flattened.
	j := jobs[0]
	if j.Title != "Senior Python Developer" {
		t.Errorf("title = %q", j.Title)
	}
	if j.Company != "Acme Corp" {
		t.Errorf("company = %q, want Acme Corp", j.Company)
	}
	if j.Location != "Austin, TX" {
		t.Errorf("location = %q, want Austin, TX", j.Location)
	}
	if j.Source != "adzuna" {
		t.Errorf("source = %q, want adzuna", j.Source)
	}
	if j.PostedAt == nil || j.PostedAt.Format("2006-01-02") != "2026-08-20" {
		t.Errorf("posted_at = %v, want 2026-08-20", j.PostedAt)
	}
	if strings.Contains(j.Description, "<") {
		t.Errorf("description still has HTML: %q", j.Description)
	}
	if j.Experience != "Senior" {
		t.Errorf("experience = %q, want Senior", j.Experience)
	}

	// Second job: empty nested objects fall back to normalize defaults,
	// unparseable date scores neutral recency.
	j2 := jobs[1]
	if j2.Company != "Technology Company" {
		t.Errorf("company = %q, want default", j2.Company)
	}
	if j2.Location != "Remote" {
		t.Errorf("location = %q, want default", j2.Location)
	}
	if j2.PostedAt != nil {
		t.Errorf("posted_at = %v, want nil", j2.PostedAt)
	}
}

func TestParseAdzunaResponseErrors(t *testing.T) {
	if _, err := parseAdzunaResponse([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}

	jobs, err := parseAdzunaResponse([]byte(`{"results": []}`))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("expected 0 jobs, got %d", len(jobs))
	}
}
