package schema

import (
	"strings"
	"testing"
)

func TestReviewContractFields(t *testing.T) {
	c := Review()

	want := []string{FieldScore, FieldSummary, FieldIssues, FieldOptimizedCode}
	got := c.FieldNames()
	if len(got) != len(want) {
		t.Fatalf("got %d fields, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReviewContractScoreBounds(t *testing.T) {
	c := Review()
	score, ok := c.Property(FieldScore)
	if !ok {
		t.Fatal("score property missing")
	}
	if score.Kind != KindInteger {
		t.Errorf("score kind = %q, want %q", score.Kind, KindInteger)
	}
	if score.Minimum == nil || *score.Minimum != 0 {
		t.Error("score minimum should be 0")
	}
	if score.Maximum == nil || *score.Maximum != 100 {
		t.Error("score maximum should be 100")
	}
}

func TestReviewContractIssueShape(t *testing.T) {
	c := Review()
	issues, ok := c.Property(FieldIssues)
	if !ok {
		t.Fatal("issues property missing")
	}
	if issues.Kind != KindArray {
		t.Fatalf("issues kind = %q, want %q", issues.Kind, KindArray)
	}
	if issues.Items == nil {
		t.Fatal("issues must declare an element shape")
	}

	want := []string{FieldLine, FieldIssue, FieldSuggestion}
	got := issues.Items.FieldNames()
	if len(got) != len(want) {
		t.Fatalf("issue has %d fields, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("issue field[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	line, _ := issues.Items.Property(FieldLine)
	if line.Kind != KindInteger {
		t.Errorf("line kind = %q, want %q", line.Kind, KindInteger)
	}
}

func TestPromptBlockMentionsEveryField(t *testing.T) {
	block := PromptBlock()
	for _, name := range []string{
		FieldScore, FieldSummary, FieldIssues, FieldOptimizedCode,
		FieldLine, FieldIssue, FieldSuggestion,
	} {
		if !strings.Contains(block, `"`+name+`"`) {
			t.Errorf("prompt block missing field %q:\n%s", name, block)
		}
	}
	if !strings.Contains(block, "0-100") {
		t.Error("prompt block should state the score range")
	}
}

func TestPromptBlockDeterministic(t *testing.T) {
	if PromptBlock() != PromptBlock() {
		t.Error("prompt block should be deterministic")
	}
}
