package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCriteriaSystemPrompt creates the instruction for criteria extraction
func (pb *PromptBuilder) BuildCriteriaSystemPrompt(count int) string {
	return fmt.Sprintf(`You are an expert technical recruiter. Given the parsed job description, extract the top %d job criteria.

Each criterion must be something a resume can be scored against: a skill, a technology, an experience level, a qualification or a domain.
Order them from most to least important for the role.
Keep every criterion short (2-6 words) and make the %d criteria distinct from each other.

Return a JSON object with a "criteria" array of exactly %d strings.`, count, count, count)
}

// BuildCriteriaUserPrompt wraps the job description sent as user content
func (pb *PromptBuilder) BuildCriteriaUserPrompt(jobDescription string) string {
	return fmt.Sprintf("JOB DESCRIPTION:\n%s", strings.TrimSpace(jobDescription))
}

// BuildScoringSystemPrompt creates the instruction for resume scoring
func (pb *PromptBuilder) BuildScoringSystemPrompt() string {
	return fmt.Sprintf(`You are an expert HR recruiter rating a candidate's resume against a fixed list of job criteria.

Rate the resume on every criterion using an integer scale from %d to %d:
%d - no evidence of the criterion
2 - weak or indirect evidence
3 - meets the criterion
4 - clearly exceeds the criterion
%d - outstanding, well-evidenced strength

Use only what the resume states. Return a JSON object with exactly one integer field per criterion, using the field names given.`,
		MinScore, MaxScore, MinScore, MaxScore)
}

// BuildScoringUserPrompt lists the criteria with their field names followed by the resume
func (pb *PromptBuilder) BuildScoringUserPrompt(resume string, shape *ResponseShape) string {
	var sb strings.Builder

	sb.WriteString("CRITERIA (field name: criterion):\n")
	for _, f := range shape.Fields {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", f.Name, strings.TrimSpace(f.Criterion)))
	}

	sb.WriteString("\nCANDIDATE RESUME:\n")
	sb.WriteString(strings.TrimSpace(resume))

	return sb.String()
}
