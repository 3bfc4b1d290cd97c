package engine

import "github.com/anatolykoptev/go_match/internal/engine/rank"

// --- Skill extraction types ---

// SkillExtractInput is the input for the skill_extract tool.
type SkillExtractInput struct {
	Text string `json:"text" jsonschema:"Free text to extract canonical skills from (resume or job description)"`
}

// SkillExtractOutput is the structured output for skill_extract.
type SkillExtractOutput struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// --- Resume types ---

// ResumeProcessInput is the input for the resume_process tool.
type ResumeProcessInput struct {
	UserID string `json:"user_id" jsonschema:"Stable identifier for the candidate (e.g. user_001)"`
	Text   string `json:"text" jsonschema:"Plain resume text (extract from PDF/DOCX before calling)"`
}

// ResumeProcessOutput is the structured output for resume_process.
type ResumeProcessOutput struct {
	UserID    string   `json:"user_id"`
	Skills    []string `json:"skills"`
	Dimension int      `json:"embedding_dimension"`
	Persisted bool     `json:"persisted"`
	Summary   string   `json:"summary"`
}

// --- Job ingestion types ---

// JobFetchInput is the input for the job_fetch tool.
type JobFetchInput struct {
	Queries []string `json:"queries,omitempty" jsonschema:"Job search queries to ingest (default: built-in query set)"`
	Limit   int      `json:"limit,omitempty" jsonschema:"Max queries to run from the list (default 20)"`
}

// JobFetchOutput is the structured output for job_fetch.
type JobFetchOutput struct {
	Fetched    int    `json:"fetched"`
	Upserted   int    `json:"upserted"`
	ActiveJobs int    `json:"active_jobs"`
	Summary    string `json:"summary"`
}

// --- Match types ---

// MatchJobsInput is the input for the match_jobs tool.
type MatchJobsInput struct {
	UserID  string    `json:"user_id,omitempty" jsonschema:"Candidate id whose stored resume to match (requires resume store)"`
	Resume  string    `json:"resume,omitempty" jsonschema:"Resume text to match directly; overrides user_id"`
	TopK    int       `json:"top_k,omitempty" jsonschema:"How many top matches to return (default 20)"`
	Weights []float64 `json:"weights,omitempty" jsonschema:"Four blend weights [semantic, keyword, recency, popularity]; normalized to sum 1.0"`
	Explain bool      `json:"explain,omitempty" jsonschema:"Generate an AI explanation for each top match (slower)"`
}

// JobMatch is one ranked job with its score breakdown.
type JobMatch struct {
	JobKey         string   `json:"job_key"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location,omitempty"`
	Source         string   `json:"source,omitempty"`
	JobType        string   `json:"job_type,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	Posted         string   `json:"posted,omitempty"`
	Description    string   `json:"description,omitempty"` // markdown snippet of the posting
	FinalScore     float64  `json:"final_score"`
	Semantic       float64  `json:"semantic"`
	Keyword        float64  `json:"keyword"`
	Recency        float64  `json:"recency"`
	Popularity     float64  `json:"popularity"`
	Skills         []string `json:"skills"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Explanation    string   `json:"explanation,omitempty"`
}

// MatchJobsOutput is the structured output for match_jobs.
type MatchJobsOutput struct {
	ResumeSkills   []string          `json:"resume_skills"`
	Matches        []JobMatch        `json:"matches"`
	CommonMissing  []rank.SkillCount `json:"common_missing"`
	GapMatrix      []rank.GapRow     `json:"gap_matrix"`
	Summary        string            `json:"summary"`
}

// --- Skill gap types ---

// SkillGapInput is the input for the skill_gap tool.
type SkillGapInput struct {
	Resume         string `json:"resume" jsonschema:"Resume text"`
	JobDescription string `json:"job_description" jsonschema:"Target job description text"`
	Courses        bool   `json:"courses,omitempty" jsonschema:"Suggest a course for each missing skill"`
}

// --- Course types ---

// CourseSuggestInput is the input for the course_suggest tool.
type CourseSuggestInput struct {
	Skill string `json:"skill" jsonschema:"Skill to find courses for (e.g. machine learning)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max courses to return (default 3)"`
}
