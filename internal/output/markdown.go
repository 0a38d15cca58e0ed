package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *Report) error {
	r := report.Result

	fmt.Fprintf(w, "## Code Review — %s\n\n", report.Language.Display())
	fmt.Fprintf(w, "**Score: %d/100** — %s\n\n", r.Score, r.Summary)

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "No issues found. :white_check_mark:")
	} else {
		fmt.Fprintf(w, "| Line | Issue | Suggestion |\n")
		fmt.Fprintf(w, "|------|-------|------------|\n")
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "| %s | %s | %s |\n",
				mdLineRef(issue.Line), mdEscape(issue.Issue), mdEscape(issue.Suggestion))
		}
	}

	fmt.Fprintf(w, "\n<details>\n<summary>Optimized code</summary>\n\n")
	fmt.Fprintf(w, "```%s\n%s\n```\n\n</details>\n", report.Language.Tag(), r.OptimizedCode)

	return nil
}

func mdLineRef(line int) string {
	if line == 0 {
		return "—"
	}
	return fmt.Sprintf("%d", line)
}

// mdEscape keeps issue text from breaking the table layout.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
