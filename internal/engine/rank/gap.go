package rank

import "sort"

// Result is the outcome of ranking one job against one resume. JobKey is the
// caller's stable job reference (ingestion hash); nothing here is persisted
// by the core.
type Result struct {
	JobKey        string   `json:"job_key"`
	Title         string   `json:"title"`
	FinalScore    float64  `json:"final_score"`
	Semantic      float64  `json:"semantic"`
	Keyword       float64  `json:"keyword"`
	MissingSkills []string `json:"missing_skills"`
}

// SkillCount is one row of the aggregate missing-skill frequency table.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// GapRow groups the missing skills of all results sharing one job title.
type GapRow struct {
	Title   string   `json:"title"`
	Missing []string `json:"missing"`
}

// MissingSkills returns job skills absent from the resume, sorted
// lexicographically. Inputs are canonical skill slices from the extractor.
func MissingSkills(resumeSkills, jobSkills []string) []string {
	resume := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resume[s] = true
	}
	missing := make([]string, 0)
	seen := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		if !resume[s] && !seen[s] {
			seen[s] = true
			missing = append(missing, s)
		}
	}
	sort.Strings(missing)
	return missing
}

// AggregateMissing counts each missing skill across the first topN results.
// Rows are ordered by count descending, then skill ascending, so the table
// is stable across runs.
func AggregateMissing(results []Result, topN int) []SkillCount {
	if topN > len(results) || topN < 0 {
		topN = len(results)
	}
	counts := make(map[string]int)
	for _, r := range results[:topN] {
		for _, s := range r.MissingSkills {
			counts[s]++
		}
	}
	out := make([]SkillCount, 0, len(counts))
	for skill, n := range counts {
		out = append(out, SkillCount{Skill: skill, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

// GapMatrix groups missing skills by job title across the first topN
// results, keeping first-seen title order and at most maxRoles rows. Results
// for identically-titled distinct postings merge into one row — grouping is
// by title string, not job identity, which is the intended role-level view.
func GapMatrix(results []Result, topN, maxRoles int) []GapRow {
	if topN > len(results) || topN < 0 {
		topN = len(results)
	}

	byTitle := make(map[string]map[string]bool)
	order := make([]string, 0)
	for _, r := range results[:topN] {
		set, ok := byTitle[r.Title]
		if !ok {
			if len(order) >= maxRoles && maxRoles > 0 {
				continue
			}
			set = make(map[string]bool)
			byTitle[r.Title] = set
			order = append(order, r.Title)
		}
		for _, s := range r.MissingSkills {
			set[s] = true
		}
	}

	rows := make([]GapRow, 0, len(order))
	for _, title := range order {
		missing := make([]string, 0, len(byTitle[title]))
		for s := range byTitle[title] {
			missing = append(missing, s)
		}
		sort.Strings(missing)
		rows = append(rows, GapRow{Title: title, Missing: missing})
	}
	return rows
}
