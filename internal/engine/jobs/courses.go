package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anatolykoptev/go_match/internal/engine"
)

// Course is one learning recommendation for a skill.
type Course struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Source      string `json:"source,omitempty"`
}

// CourseClient looks up course recommendations for skills. The zero
// value is not usable; use NewCourseClient.
type CourseClient struct {
	http *http.Client
}

// NewCourseClient builds a course client on the engine's HTTP client,
// falling back to a default client when none is configured.
func NewCourseClient() *CourseClient {
	client := engine.Cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &CourseClient{http: client}
}

// SuggestCourses returns up to limit course recommendations for a
// skill. Lookup cascades: Coursera catalog API, then a curated
// skill-to-course map, then a generic Coursera search link. It never
// returns an empty list for a non-empty skill.
func (c *CourseClient) SuggestCourses(ctx context.Context, skill string, limit int) []Course {
	engine.IncrCourseRequests()

	if limit <= 0 {
		limit = 3
	}
	clean := strings.ToLower(strings.TrimSpace(skill))
	if len(clean) < 2 {
		return []Course{{
			Title:       "Search Coursera",
			URL:         "https://www.coursera.org",
			Description: "Browse Coursera courses",
		}}
	}

	if courses := c.searchCatalog(ctx, clean, limit); len(courses) > 0 {
		return courses
	}
	if courses := curatedCourses(clean, limit); len(courses) > 0 {
		return courses
	}
	return fallbackCourses(clean)
}

// courseraResponse is the catalog API envelope.
type courseraResponse struct {
	Elements []struct {
		Slug        string `json:"slug"`
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"elements"`
}

// searchCatalog queries the public Coursera catalog API. Any failure
// returns nil so the caller falls through to the curated map.
func (c *CourseClient) searchCatalog(ctx context.Context, skill string, limit int) []Course {
	params := url.Values{
		"q":      {"search"},
		"query":  {skill},
		"limit":  {fmt.Sprint(limit)},
		"fields": {"slug,name,description"},
	}
	reqURL := "https://api.coursera.org/api/courses.v1?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var parsed courseraResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil
	}

	var courses []Course
	for _, el := range parsed.Elements {
		if el.Name == "" || el.Slug == "" {
			continue
		}
		desc := el.Description
		if desc != "" {
			desc = engine.TruncateRunes(desc, 120, "...")
		} else {
			desc = "Course on " + skill
		}
		courses = append(courses, Course{
			Title:       el.Name,
			URL:         "https://www.coursera.org/learn/" + el.Slug,
			Description: desc,
			Source:      "Coursera API",
		})
		if len(courses) >= limit {
			break
		}
	}
	return courses
}

// curatedCourse is a (title, slug) pair in the curated map.
type curatedCourse struct {
	title string
	slug  string
}

// curatedEntry binds a skill key to its course list. Entries are
// matched in order so lookups are deterministic.
type curatedEntry struct {
	key     string
	courses []curatedCourse
}

// curatedCatalog covers common IT and non-IT skills at domain level.
var curatedCatalog = []curatedEntry{
	{"python", []curatedCourse{
		{"Python for Everybody", "python"},
		{"Python Data Structures", "python-data"},
	}},
	{"javascript", []curatedCourse{
		{"JavaScript for Web Development", "javascript"},
		{"Full-Stack Web Development", "full-stack"},
	}},
	{"react", []curatedCourse{
		{"Front-End Web Development with React", "front-end-react"},
		{"React Basics", "react-basics"},
	}},
	{"sql", []curatedCourse{
		{"SQL for Data Science", "sql-for-data-science"},
		{"Databases and SQL", "databases-sql"},
	}},
	{"machine learning", []curatedCourse{
		{"Machine Learning", "machine-learning"},
		{"Applied Data Science with Python", "applied-data-science"},
	}},
	{"data science", []curatedCourse{
		{"Data Science Fundamentals", "data-science"},
		{"Data Analysis with Python", "data-analysis-python"},
	}},
	{"aws", []curatedCourse{
		{"AWS Fundamentals", "aws-fundamentals"},
		{"AWS Cloud Technical Essentials", "aws-cloud"},
	}},
	{"docker", []curatedCourse{
		{"Docker for Beginners", "docker"},
		{"Introduction to Containers", "containers"},
	}},
	{"kubernetes", []curatedCourse{
		{"Architecting with Google Kubernetes Engine", "architecting-gcp-kubernetes"},
	}},
	{"project management", []curatedCourse{
		{"Google Project Management", "google-project-management"},
		{"Project Management Principles", "project-management-principles"},
	}},
	{"business analysis", []curatedCourse{
		{"Business Analysis Fundamentals", "business-analysis"},
		{"Requirements Gathering", "requirements-gathering"},
	}},
	{"recruitment", []curatedCourse{
		{"Recruiting, Hiring and Onboarding Employees", "recruiting-hiring"},
		{"Human Resource Management", "human-resource-management"},
	}},
	{"talent acquisition", []curatedCourse{
		{"Talent Management", "talent-management"},
	}},
	{"financial analysis", []curatedCourse{
		{"Financial Analysis Fundamentals", "financial-analysis"},
		{"Corporate Finance Essentials", "corporate-finance"},
	}},
	{"accounting", []curatedCourse{
		{"Financial Accounting Fundamentals", "financial-accounting"},
		{"Managerial Accounting", "managerial-accounting"},
	}},
	{"digital marketing", []curatedCourse{
		{"Digital Marketing Specialization", "digital-marketing"},
		{"SEO Fundamentals", "seo-fundamentals"},
	}},
	{"seo", []curatedCourse{
		{"Search Engine Optimization", "seo"},
	}},
}

// curatedCourses matches the skill against the curated catalog by
// substring, so "python developer" still hits "python".
func curatedCourses(skill string, limit int) []Course {
	for _, entry := range curatedCatalog {
		key, entries := entry.key, entry.courses
		if !strings.Contains(skill, key) {
			continue
		}
		if len(entries) > limit {
			entries = entries[:limit]
		}
		courses := make([]Course, 0, len(entries))
		for _, e := range entries {
			courses = append(courses, Course{
				Title:       e.title,
				URL:         "https://www.coursera.org/learn/" + e.slug,
				Description: "Learn " + key,
				Source:      "Curated Mapping",
			})
		}
		return courses
	}
	return nil
}

// fallbackCourses returns a generic search link when nothing matched.
func fallbackCourses(skill string) []Course {
	return []Course{{
		Title:       fmt.Sprintf("Search Coursera for '%s'", titleCase(skill)),
		URL:         "https://www.coursera.org/search?query=" + url.QueryEscape(skill),
		Description: "Browse Coursera courses related to " + skill,
		Source:      "Coursera Search",
	}}
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
