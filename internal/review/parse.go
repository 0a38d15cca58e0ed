package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/schema"
)

// rawResult is the decode overlay for the model's JSON object. Pointer
// fields distinguish a missing field from a zero value; its json tags
// mirror the contract in internal/schema (enforced by a test).
type rawResult struct {
	Score         *int       `json:"score"`
	Summary       *string    `json:"summary"`
	Issues        []rawIssue `json:"issues"`
	OptimizedCode *string    `json:"optimizedCode"`

	issuesPresent bool
}

type rawIssue struct {
	Line       *int    `json:"line"`
	Issue      *string `json:"issue"`
	Suggestion *string `json:"suggestion"`
}

// UnmarshalJSON records whether the issues key was present, since a nil
// slice alone cannot distinguish "issues": null from a missing field.
func (r *rawResult) UnmarshalJSON(data []byte) error {
	type plain rawResult
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*r = rawResult(p)
	if v, ok := keys[schema.FieldIssues]; ok && string(v) != "null" {
		r.issuesPresent = true
	}
	return nil
}

// ParseResult validates raw model output against the review contract.
// Any defect — unparseable text, a missing field, a wrong primitive
// kind, an out-of-range score, an empty summary or issue text — yields
// a SchemaViolation and no result. Out-of-range scores are rejected
// rather than clamped so model misbehavior stays visible to the caller.
func ParseResult(content string) (*AnalysisResult, *AnalysisError) {
	content = strings.TrimSpace(content)
	content = stripFences(content)

	var raw rawResult
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, schemaError(fmt.Sprintf("invalid JSON object: %v", err))
	}

	if raw.Score == nil {
		return nil, missingField(schema.FieldScore)
	}
	if raw.Summary == nil {
		return nil, missingField(schema.FieldSummary)
	}
	if !raw.issuesPresent {
		return nil, missingField(schema.FieldIssues)
	}
	if raw.OptimizedCode == nil {
		return nil, missingField(schema.FieldOptimizedCode)
	}

	if *raw.Score < 0 || *raw.Score > 100 {
		return nil, schemaError(fmt.Sprintf("score %d outside [0,100]", *raw.Score))
	}
	if strings.TrimSpace(*raw.Summary) == "" {
		return nil, schemaError("summary is empty")
	}

	issues := make([]Issue, 0, len(raw.Issues))
	for i, ri := range raw.Issues {
		switch {
		case ri.Line == nil:
			return nil, missingIssueField(i, schema.FieldLine)
		case ri.Issue == nil:
			return nil, missingIssueField(i, schema.FieldIssue)
		case ri.Suggestion == nil:
			return nil, missingIssueField(i, schema.FieldSuggestion)
		}
		if *ri.Line < 0 {
			return nil, schemaError(fmt.Sprintf("issue %d: negative line number %d", i, *ri.Line))
		}
		if strings.TrimSpace(*ri.Issue) == "" {
			return nil, schemaError(fmt.Sprintf("issue %d: empty issue description", i))
		}
		if strings.TrimSpace(*ri.Suggestion) == "" {
			return nil, schemaError(fmt.Sprintf("issue %d: empty suggestion", i))
		}
		issues = append(issues, Issue{
			Line:       *ri.Line,
			Issue:      *ri.Issue,
			Suggestion: *ri.Suggestion,
		})
	}

	return &AnalysisResult{
		Score:         *raw.Score,
		Summary:       *raw.Summary,
		Issues:        issues,
		OptimizedCode: *raw.OptimizedCode,
	}, nil
}

func missingField(name string) *AnalysisError {
	return schemaError(fmt.Sprintf("missing required field %q", name))
}

func missingIssueField(index int, name string) *AnalysisError {
	return schemaError(fmt.Sprintf("issue %d: missing required field %q", index, name))
}

// stripFences removes a surrounding markdown code fence, which some
// models emit despite the JSON-only instruction.
func stripFences(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return content
	}
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.Join(lines[1:end], "\n")
}
