package jobs

import "testing"

const sampleJSearchJSON = `{
	"data": [
		{
			"job_title": "Backend Developer",
			"employer_name": "StartupXYZ",
			"job_description": "Go services backed by PostgreSQL.",
			"job_city": "Berlin",
			"job_country": "Germany",
			"job_posted_at_datetime_utc": "2026-08-18T09:30:00.000Z"
		},
		{
			"job_title": "DevOps Engineer",
			"employer_name": "CloudInc",
			"job_description": "Kubernetes clusters on AWS.",
			"job_city": "",
			"job_country": "US",
			"job_posted_at_datetime_utc": ""
		}
	]
}`

func TestParseJSearchResponse(t *testing.T) {
	jobs, err := parseJSearchResponse([]byte(sampleJSearchJSON))
	if err != nil {
		t.Fatalf("parseJSearchResponse error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Title != "Backend Developer" {
		t.Errorf("title = %q", j.Title)
	}
	if j.Company != "StartupXYZ" {
		t.Errorf("company = %q, want StartupXYZ", j.Company)
	}
	if j.Location != "Berlin, Germany" {
		t.Errorf("location = %q, want Berlin, Germany", j.Location)
	}
	if j.Source != "jsearch" {
		t.Errorf("source = %q, want jsearch", j.Source)
	}
	if j.PostedAt == nil || j.PostedAt.Format("2006-01-02") != "2026-08-18" {
		t.Errorf("posted_at = %v, want 2026-08-18", j.PostedAt)
	}

	// Second job: no city, no posted date.
	j2 := jobs[1]
	if j2.Location != "US" {
		t.Errorf("location = %q, want US", j2.Location)
	}
	if j2.PostedAt != nil {
		t.Errorf("posted_at = %v, want nil", j2.PostedAt)
	}
}

func TestParseJSearchResponseError(t *testing.T) {
	if _, err := parseJSearchResponse([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestJSearchLocation(t *testing.T) {
	tests := []struct {
		city, country, want string
	}{
		{"Berlin", "Germany", "Berlin, Germany"},
		{"", "US", "US"},
		{"Austin", "", "Austin"},
		{"  Austin  ", " US ", "Austin, US"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := jsearchLocation(tt.city, tt.country); got != tt.want {
			t.Errorf("jsearchLocation(%q, %q) = %q, want %q", tt.city, tt.country, got, tt.want)
		}
	}
}
