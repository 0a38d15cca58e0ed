package output

import (
	"fmt"
	"io"
	"strings"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}
	r := report.Result

	ew.printf("Code Review — %s\n", report.Language.Display())
	ew.printf("Reviewer: %s (%s)\n", report.Provider, report.Model)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Score: %d/100  %s\n", r.Score, scoreLabel(r.Score))
	ew.println("")

	for _, line := range wrapText(r.Summary, 70) {
		ew.printf("%s\n", line)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if len(r.Issues) == 0 {
		ew.println("No issues found. Looks good!")
	} else {
		ew.printf("Issues: %d\n", len(r.Issues))
		for _, issue := range r.Issues {
			ew.printf("\n  %s  %s\n", lineRef(issue.Line), issue.Issue)
			ew.println("  Suggestion:")
			for _, line := range wrapText(issue.Suggestion, 70) {
				ew.printf("    %s\n", line)
			}
		}
	}

	ew.println(strings.Repeat("─", 60))
	ew.println("Optimized code:")
	ew.println("")
	ew.println(r.OptimizedCode)

	return ew.err
}

func lineRef(line int) string {
	if line == 0 {
		return "[whole snippet]"
	}
	return fmt.Sprintf("line %d:", line)
}

func scoreLabel(score int) string {
	switch {
	case score >= 80:
		return "(good)"
	case score >= 50:
		return "(needs work)"
	default:
		return "(poor)"
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
