package review

import (
	"fmt"
	"strings"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/schema"
)

const systemPromptText = `You are an expert senior software engineer performing a strict, thorough code review.

For the code you are given, produce exactly four deliverables:
1. An overall quality score from 0 to 100, where 100 is flawless production-ready code.
2. An itemized list of issues. Each issue names the 1-based line number it refers to (use 0 for issues that apply to the snippet as a whole), describes what is wrong and why it matters, and gives a concrete suggested fix.
3. A complete optimized rewrite of the code. Return the full code, not a fragment. If no improvement is possible, return the code unchanged.
4. A plain-English summary of the overall code quality.

Line numbers refer to the code exactly as it appears between the BEGIN and END markers.

You MUST respond with ONLY a single JSON object matching this exact structure. No markdown, no explanation, no preamble:

`

// SystemPrompt returns the reviewer persona and output contract sent as
// the system instruction. The JSON shape is rendered from the schema
// contract so prompt and validator cannot drift apart.
func SystemPrompt() string {
	return systemPromptText + schema.PromptBlock()
}

// BuildPrompt constructs the user prompt for one analysis. The code is
// embedded verbatim between language-tagged markers: no truncation, no
// re-encoding, whitespace preserved exactly, so the model's line numbers
// refer to the submitted code line for line. Pure function of its inputs.
func BuildPrompt(lang Language, code string, guidelines *Guidelines) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Review the following %s code.\n", lang.Display())

	if section := BuildGuidelinesPromptSection(guidelines); section != "" {
		b.WriteString(section)
	}

	marker := strings.ToUpper(lang.Tag())
	fmt.Fprintf(&b, "\n--- BEGIN %s CODE ---\n", marker)
	b.WriteString(code)
	fmt.Fprintf(&b, "\n--- END %s CODE ---\n", marker)

	return b.String()
}
