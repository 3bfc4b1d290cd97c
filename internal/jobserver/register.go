// Package jobserver exposes the matching engine as MCP tools: skill
// extraction, resume processing, job ingestion, hybrid ranking, skill gap
// analysis, and course suggestions.
package jobserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all matching tools on the given MCP server:
// skill_extract, resume_process, job_fetch, match_jobs, skill_gap,
// course_suggest.
func RegisterTools(server *mcp.Server) {
	registerSkillExtract(server)
	registerResumeProcess(server)
	registerJobFetch(server)
	registerMatchJobs(server)
	registerSkillGap(server)
	registerCourseSuggest(server)
}
