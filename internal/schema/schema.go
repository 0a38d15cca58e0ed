package schema

import (
	"fmt"
	"strings"
)

// Kind is the primitive kind a contract field must carry.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindArray   Kind = "array"
)

// Property describes one required field of the response contract.
type Property struct {
	Name        string
	Kind        Kind
	Description string
	Minimum     *float64 // numeric lower bound, inclusive
	Maximum     *float64 // numeric upper bound, inclusive
	Items       *Object  // element shape when Kind is KindArray
}

// Object is an ordered set of required properties. Every property is
// required; the contract has no optional fields.
type Object struct {
	Name       string
	Properties []Property
}

// Property looks up a property by name.
func (o *Object) Property(name string) (Property, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// FieldNames returns the property names in declaration order.
func (o *Object) FieldNames() []string {
	names := make([]string, 0, len(o.Properties))
	for _, p := range o.Properties {
		names = append(names, p.Name)
	}
	return names
}

// Field names of the review contract. The validator's decode overlay and
// the provider translators all reference these names.
const (
	FieldScore         = "score"
	FieldSummary       = "summary"
	FieldIssues        = "issues"
	FieldOptimizedCode = "optimizedCode"
	FieldLine          = "line"
	FieldIssue         = "issue"
	FieldSuggestion    = "suggestion"
)

var reviewContract = &Object{
	Name: "code_review",
	Properties: []Property{
		{
			Name:        FieldScore,
			Kind:        KindInteger,
			Description: "Overall code quality score from 0 to 100",
			Minimum:     bound(0),
			Maximum:     bound(100),
		},
		{
			Name:        FieldSummary,
			Kind:        KindString,
			Description: "Plain-English summary of the overall code quality",
		},
		{
			Name:        FieldIssues,
			Kind:        KindArray,
			Description: "Issues found in the code, in source order",
			Items: &Object{
				Name: "issue",
				Properties: []Property{
					{
						Name:        FieldLine,
						Kind:        KindInteger,
						Description: "1-based line number the issue refers to, or 0 if it applies to the whole snippet",
						Minimum:     bound(0),
					},
					{
						Name:        FieldIssue,
						Kind:        KindString,
						Description: "What is wrong and why it matters",
					},
					{
						Name:        FieldSuggestion,
						Kind:        KindString,
						Description: "How to fix it",
					},
				},
			},
		},
		{
			Name:        FieldOptimizedCode,
			Kind:        KindString,
			Description: "The full rewritten code; may equal the input if no improvement is possible",
		},
	},
}

// Review returns the contract for a code review response. Callers must
// treat the returned value as read-only.
func Review() *Object {
	return reviewContract
}

// PromptBlock renders the contract as an annotated JSON shape suitable
// for embedding in a prompt. The output is deterministic.
func PromptBlock() string {
	var b strings.Builder
	writeObject(&b, reviewContract, 0)
	b.WriteString("\n")
	return b.String()
}

func writeObject(b *strings.Builder, o *Object, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString("{\n")
	for i, p := range o.Properties {
		fmt.Fprintf(b, "%s  %q: ", indent, p.Name)
		switch p.Kind {
		case KindArray:
			b.WriteString("[")
			writeObject(b, p.Items, depth+2)
			b.WriteString(", ...]")
		default:
			b.WriteString(placeholder(p))
		}
		if i < len(o.Properties)-1 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, "  // %s\n", p.Description)
	}
	b.WriteString(indent + "}")
}

func placeholder(p Property) string {
	switch p.Kind {
	case KindInteger:
		if p.Minimum != nil && p.Maximum != nil {
			return fmt.Sprintf("<integer %d-%d>", int(*p.Minimum), int(*p.Maximum))
		}
		return "<integer>"
	default:
		return "\"<string>\""
	}
}

func bound(v float64) *float64 {
	return &v
}
