package review

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Guidelines is a reviewer guidelines pack loaded from --guidelines.
type Guidelines struct {
	Focus    []string        `json:"focus,omitempty"`
	Required []RequiredCheck `json:"required,omitempty"`
}

// RequiredCheck is a check the reviewer must always evaluate.
type RequiredCheck struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// LoadGuidelines loads a guidelines file from disk. Returns nil
// Guidelines and nil error if path is empty.
func LoadGuidelines(path string) (*Guidelines, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading guidelines file: %w", err)
	}
	var g Guidelines
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing guidelines file: %w", err)
	}
	return &g, nil
}

// BuildGuidelinesPromptSection returns additional prompt instructions
// derived from a guidelines pack.
func BuildGuidelinesPromptSection(g *Guidelines) string {
	if g == nil {
		return ""
	}

	var b strings.Builder

	if len(g.Focus) > 0 {
		fmt.Fprintf(&b, "\nFocus areas: %s. Prioritize issues in these areas.\n",
			strings.Join(g.Focus, ", "))
	}

	if len(g.Required) > 0 {
		b.WriteString("\nRequired checks (always evaluate these):\n")
		for _, req := range g.Required {
			fmt.Fprintf(&b, "- [%s] %s\n", req.ID, req.Text)
		}
	}

	return b.String()
}
