package jobs

import (
	"strings"
	"time"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/skills"
)

// Field clamps for normalized jobs. Oversized upstream values are truncated,
// not rejected — a 300-char title is still a job.
const (
	maxTitleLen       = 200
	maxCompanyLen     = 100
	maxLocationLen    = 150
	maxDescriptionLen = 2000
)

// NormalizeJob turns raw posting fields into a scored-ready Job: clamps and
// defaults every field, strips HTML from the description (keeping a markdown
// rendering for display), detects job type and experience level from the
// title, extracts skills, and computes the dedup hash. source tags where the
// posting came from (adzuna, jsearch).
func NormalizeJob(title, company, description, location string, postedAt *time.Time, source string) Job {
	title = engine.TruncateRunes(strings.TrimSpace(title), maxTitleLen, "")
	if title == "" {
		title = "Software Developer"
	}

	company = engine.TruncateRunes(strings.TrimSpace(company), maxCompanyLen, "")
	if company == "" {
		company = "Technology Company"
	}

	var descriptionMD string
	if description != "" {
		descriptionMD = engine.Truncate(engine.HTMLToMarkdown(description), maxDescriptionLen)
		description = engine.Truncate(engine.CleanHTML(description), maxDescriptionLen)
	} else {
		description = title + " position requiring relevant skills and experience."
		descriptionMD = description
	}

	location = engine.TruncateRunes(strings.TrimSpace(location), maxLocationLen, "")
	if location == "" {
		location = "Remote"
	}

	if postedAt != nil && postedAt.IsZero() {
		postedAt = nil
	}

	job := Job{
		Hash:          jobHash(title, company, location),
		Title:         title,
		Company:       company,
		Description:   description,
		DescriptionMD: descriptionMD,
		Location:      location,
		PostedAt:      postedAt,
		Source:        source,
		JobType:       detectJobType(title),
		Experience:    detectExperience(title),
		Remote:        strings.Contains(strings.ToLower(location), "remote"),
		IngestedAt:    time.Now().UTC(),
	}
	job.Skills = skills.Extract(job.Text())
	return job
}

// detectJobType classifies a posting from title keywords. Full-time is the
// default when nothing else matches.
func detectJobType(title string) string {
	t := strings.ToLower(title)
	switch {
	case containsAny(t, "contract", "freelance", "consultant"):
		return "Contract"
	case containsAny(t, "part-time", "part time"):
		return "Part-time"
	case containsAny(t, "intern", "internship"):
		return "Internship"
	default:
		return "Full-time"
	}
}

// detectExperience infers seniority from title keywords; Mid when unclear.
func detectExperience(title string) string {
	t := strings.ToLower(title)
	switch {
	case containsAny(t, "senior", "lead", "principal", "manager", "director"):
		return "Senior"
	case containsAny(t, "junior", "entry", "associate", "trainee"):
		return "Entry"
	default:
		return "Mid"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// parsePostedDate tries the timestamp layouts the job APIs actually emit.
// Unparseable dates return nil — downstream scoring treats that as the
// neutral-recency case rather than an error.
func parsePostedDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
